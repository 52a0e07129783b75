package inmemory

import "sync"

type Snapshot struct {
	SpinTotal        uint64  `json:"spin_total"`
	PayoutTotal      uint64  `json:"payout_total"`
	PayoutMax        uint64  `json:"payout_max"`
	PayoutAvg        float64 `json:"payout_avg"`
	ConsumptionTotal uint64  `json:"consumption_total"`
	RentPaidTotal    uint64  `json:"rent_paid_total"`
	RentPaidCount    uint64  `json:"rent_paid_count"`
	GameOverTotal    uint64  `json:"game_over_total"`
	FailureTotal     uint64  `json:"failure_total"`
}

type Recorder struct {
	mu          sync.Mutex
	spins       uint64
	payout      uint64
	payoutMax   uint64
	consumed    uint64
	rentPaid    uint64
	rentPayment uint64
	gameOvers   uint64
	failures    uint64
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordSpin(payout, consumed int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spins++
	if payout > 0 {
		r.payout += uint64(payout)
		if uint64(payout) > r.payoutMax {
			r.payoutMax = uint64(payout)
		}
	}
	if consumed > 0 {
		r.consumed += uint64(consumed)
	}
}

func (r *Recorder) RecordRentPaid(amount int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rentPayment++
	if amount > 0 {
		r.rentPaid += uint64(amount)
	}
}

func (r *Recorder) RecordGameOver() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gameOvers++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		SpinTotal:        r.spins,
		PayoutTotal:      r.payout,
		PayoutMax:        r.payoutMax,
		ConsumptionTotal: r.consumed,
		RentPaidTotal:    r.rentPaid,
		RentPaidCount:    r.rentPayment,
		GameOverTotal:    r.gameOvers,
		FailureTotal:     r.failures,
	}
	if r.spins > 0 {
		out.PayoutAvg = float64(r.payout) / float64(r.spins)
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
