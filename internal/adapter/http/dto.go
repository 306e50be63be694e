package httpadapter

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"unipact/internal/core/domain"
	"unipact/internal/core/port"
)

type createCampaignRequest struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Type         domain.CampaignType `json:"type"`
	Budget       decimal.Decimal     `json:"budget"`
	Deadline     *string             `json:"deadline"`
	Requirements []string            `json:"requirements"`
	Draft        bool                `json:"draft"`
}

func (req createCampaignRequest) input() (port.CreateCampaignInput, error) {
	in := port.CreateCampaignInput{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Budget:       req.Budget,
		Requirements: req.Requirements,
		Draft:        req.Draft,
	}
	if req.Deadline != nil && *req.Deadline != "" {
		d, err := time.Parse(time.DateOnly, *req.Deadline)
		if err != nil {
			return in, port.ErrInvalidCampaignInput
		}
		in.Deadline = &d
	}
	return in, nil
}

type campaignResponse struct {
	ID           uuid.UUID             `json:"id"`
	CompanyID    uuid.UUID             `json:"company_id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Type         domain.CampaignType   `json:"type"`
	Budget       string                `json:"budget"`
	Requirements []string              `json:"requirements"`
	Deadline     *string               `json:"deadline"`
	Status       domain.CampaignStatus `json:"status"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	Applications []applicationResponse `json:"applications,omitempty"`
}

func toCampaign(c domain.Campaign) campaignResponse {
	resp := campaignResponse{
		ID:           c.ID,
		CompanyID:    c.CompanyID,
		Title:        c.Title,
		Description:  c.Description,
		Type:         c.Type,
		Budget:       c.Budget.StringFixed(2),
		Requirements: c.Requirements,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if resp.Requirements == nil {
		resp.Requirements = []string{}
	}
	if c.Deadline != nil {
		d := c.Deadline.Format(time.DateOnly)
		resp.Deadline = &d
	}
	return resp
}

func toCampaigns(items []domain.Campaign) []campaignResponse {
	out := make([]campaignResponse, len(items))
	for i, c := range items {
		out[i] = toCampaign(c)
	}
	return out
}

type applyRequest struct {
	Message string `json:"message"`
}

type applicationResponse struct {
	ID          uuid.UUID                `json:"id"`
	CampaignID  uuid.UUID                `json:"campaign_id"`
	ClubID      uuid.UUID                `json:"club_id"`
	Message     string                   `json:"message"`
	Status      domain.ApplicationStatus `json:"status"`
	SubmittedAt time.Time                `json:"submitted_at"`
}

func toApplication(a domain.Application) applicationResponse {
	return applicationResponse{
		ID:          a.ID,
		CampaignID:  a.CampaignID,
		ClubID:      a.ClubID,
		Message:     a.Message,
		Status:      a.Status,
		SubmittedAt: a.SubmittedAt,
	}
}

func toApplications(items []domain.Application) []applicationResponse {
	out := make([]applicationResponse, len(items))
	for i, a := range items {
		out[i] = toApplication(a)
	}
	return out
}

type deliverableResponse struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"application_id"`
	FileRef       string    `json:"file_ref"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

func toDeliverable(d domain.Deliverable) deliverableResponse {
	return deliverableResponse{ID: d.ID, ApplicationID: d.ApplicationID, FileRef: d.FileRef, UploadedAt: d.UploadedAt}
}

type completionResponse struct {
	Campaign  campaignResponse `json:"campaign"`
	ReportURL *string          `json:"report_url"`
}

type reportResponse struct {
	CampaignID uuid.UUID `json:"campaign_id"`
	URL        string    `json:"url"`
	CreatedAt  time.Time `json:"created_at"`
}

type reviewRequest struct {
	ClubID     uuid.UUID `json:"club_id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
}

type reviewResponse struct {
	ID         uuid.UUID `json:"id"`
	ReviewerID uuid.UUID `json:"reviewer_id"`
	RevieweeID uuid.UUID `json:"reviewee_id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type clubResponse struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	University string      `json:"university"`
	Rank       domain.Rank `json:"rank"`
}

type paymentIntentRequest struct {
	Amount     decimal.Decimal        `json:"amount"`
	Type       domain.TransactionType `json:"type"`
	CampaignID *uuid.UUID             `json:"campaign_id"`
}

type transactionResponse struct {
	ID         uuid.UUID                `json:"id"`
	CompanyID  uuid.UUID                `json:"company_id"`
	Amount     string                   `json:"amount"`
	Type       domain.TransactionType   `json:"type"`
	Status     domain.TransactionStatus `json:"status"`
	CampaignID *uuid.UUID               `json:"campaign_id"`
	PaymentRef string                   `json:"payment_ref"`
	CreatedAt  time.Time                `json:"created_at"`
}

func toTransaction(tx domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:         tx.ID,
		CompanyID:  tx.CompanyID,
		Amount:     tx.Amount.StringFixed(2),
		Type:       tx.Type,
		Status:     tx.Status,
		CampaignID: tx.CampaignID,
		PaymentRef: tx.PaymentRef,
		CreatedAt:  tx.CreatedAt,
	}
}

type paymentIntentResponse struct {
	Transaction  transactionResponse `json:"transaction"`
	ClientSecret string              `json:"client_secret"`
}
