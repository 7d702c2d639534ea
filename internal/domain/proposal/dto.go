package proposal

type CreateProposalInput struct {
	CoverLetter       string  `json:"coverLetter" binding:"required,max=5000"`
	BidAmount         float64 `json:"bidAmount" binding:"required,gt=0"`
	EstimatedDuration string  `json:"estimatedDuration" binding:"omitempty,max=50"`
}
