package contract

type SignInput struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
	Signature     string `json:"signature" binding:"required"`
}

type FundInput struct {
	TxHash string  `json:"txHash" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// ReconcileReport summarizes a reconciliation sweep.
type ReconcileReport struct {
	Scanned int    `json:"scanned"`
	Changed int    `json:"changed"`
	JobIDs  []uint `json:"jobIds,omitempty"`
	// Conflicts lists contracts whose job has moved past them.
	Conflicts []uint `json:"conflicts,omitempty"`
}
