package constant

// Sale statuses as stored in main.sales.
const (
	SaleStatusCompleted = "COMPLETED"
	SaleStatusRefunded  = "REFUNDED"
	SaleStatusFailed    = "FAILED"
	SaleStatusCancelled = "CANCELLED"
)

// Return request statuses and dispositions as stored in main.rma_requests.
const (
	RmaStatusCompleted = "COMPLETED"
	RmaStatusCancelled = "CANCELLED"

	RmaDispositionReject = "REJECT"
)

var (
	SuccessfulSaleStatuses = []string{SaleStatusCompleted, SaleStatusRefunded}
	FailedSaleStatuses     = []string{SaleStatusFailed, SaleStatusCancelled}
	RevenueSaleStatuses    = []string{SaleStatusCompleted}

	// A return request in any other status is still being worked.
	TerminalRmaStatuses = []string{RmaStatusCompleted, RmaStatusCancelled}
)
