package ports

type GameMetrics interface {
	RecordSpin(payout, consumed int)
	RecordRentPaid(amount int)
	RecordGameOver()
	RecordFailure()
}
