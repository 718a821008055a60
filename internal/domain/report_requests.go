package domain

// CreateReportRequest is the POST /reports body.
type CreateReportRequest struct {
	OffenseTypeID int         `json:"offense_type_id" validate:"required,min=1"`
	Coordinates   Coordinates `json:"coordinates" validate:"required"`
}

// QueryReportsRequest is the decoded form of the GET /reports query string.
type QueryReportsRequest struct {
	Box         BoundingBox
	OffenseType *int
	ActiveOnly  bool
}

type ConfirmReportResponse struct {
	Status            string `json:"status"`
	ConfirmationCount int    `json:"confirmation_count"`
}
