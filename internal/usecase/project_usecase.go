package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"agencydesk/internal/domain/billing"
	"agencydesk/internal/domain/entities"
	"agencydesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound       = errors.New("project not found")
	ErrInvalidProjectID      = errors.New("invalid project id")
	ErrInvalidProjectName    = errors.New("invalid project name")
	ErrInvalidProjectClient  = errors.New("invalid project client id")
	ErrInvalidPaymentKind    = errors.New("invalid project payment kind")
	ErrInvalidPaymentAmount  = errors.New("invalid project payment amount")
	ErrInvalidPaymentPayload = errors.New("invalid project payment payload")
	ErrPaymentGatewayFailure = errors.New("payment gateway failure")
)

// ProjectPaymentResult pairs the updated project with the provider payment
// reference when the payment was collected through the gateway.

type ProjectPaymentResult struct {
	Project           entities.Project
	ProviderPaymentID string
	ProviderStatus    string
}

// IProjectUseCase exposes project operations, including the display-side
// billing rollup consumed by progress bars and kanban totals.

type IProjectUseCase interface {
	Create(ctx context.Context, clientID, name string, quoteAmount float64) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Project, error)
	SetQuoteAmount(ctx context.Context, id string, amount float64) (entities.Project, error)
	GetBilling(ctx context.Context, id string) (entities.Project, billing.ProjectBilling, error)
	CollectPayment(ctx context.Context, id string, kind entities.ProjectPaymentKind, amount float64, payload json.RawMessage) (ProjectPaymentResult, error)
}

type ProjectUseCase struct {
	repo            interfaces.IProjectRepository
	deliverableRepo interfaces.IDeliverableRepository
	gateway         interfaces.IPaymentGateway
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, deliverableRepo interfaces.IDeliverableRepository, gateway interfaces.IPaymentGateway) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, deliverableRepo: deliverableRepo, gateway: gateway}
}

func (u *ProjectUseCase) Create(ctx context.Context, clientID, name string, quoteAmount float64) (entities.Project, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Project{}, ErrInvalidProjectClient
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Project{}, ErrInvalidProjectName
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:          uuid.NewString(),
		ClientID:    clientID,
		Name:        name,
		QuoteAmount: quoteAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.Project, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidProjectClient
	}
	return u.repo.ListByClientID(ctx, clientID)
}

func (u *ProjectUseCase) SetQuoteAmount(ctx context.Context, id string, amount float64) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	updated, err := u.repo.UpdateQuoteAmountByID(ctx, id, amount)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

// GetBilling recomputes the rollup from current records on every call; there
// is no caching contract.
func (u *ProjectUseCase) GetBilling(ctx context.Context, id string) (entities.Project, billing.ProjectBilling, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, billing.ProjectBilling{}, err
	}

	deliverables, err := u.deliverableRepo.ListByProjectID(ctx, p.ID)
	if err != nil {
		return entities.Project{}, billing.ProjectBilling{}, err
	}

	return p, billing.ComputeBilling(p, deliverables), nil
}

// CollectPayment records a deposit, progress or balance payment on the
// project, optionally charging it first through the configured gateway.
// Balance carries no amount of its own: it settles the quote by stamping
// BalanceDate.
func (u *ProjectUseCase) CollectPayment(ctx context.Context, id string, kind entities.ProjectPaymentKind, amount float64, payload json.RawMessage) (ProjectPaymentResult, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return ProjectPaymentResult{}, err
	}

	switch kind {
	case entities.ProjectPaymentDeposit, entities.ProjectPaymentProgress:
		if amount <= 0 {
			return ProjectPaymentResult{}, ErrInvalidPaymentAmount
		}
	case entities.ProjectPaymentBalance:
		// Settles whatever remains; an explicit amount is not required.
	default:
		return ProjectPaymentResult{}, ErrInvalidPaymentKind
	}

	result := ProjectPaymentResult{}
	if u.gateway != nil && len(payload) > 0 {
		enriched, err := enrichPaymentPayload(payload, p.ID, kind, amount)
		if err != nil {
			return ProjectPaymentResult{}, err
		}

		log.Printf("[project][usecase] collecting payment project_id=%s kind=%s amount=%v", p.ID, kind, amount)
		providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, enriched)
		if err != nil {
			log.Printf("[project][usecase] payment gateway failed project_id=%s err=%v", p.ID, err)
			return ProjectPaymentResult{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailure, err)
		}
		result.ProviderPaymentID = providerID
		result.ProviderStatus = providerStatus
	}

	deposit := p.DepositAmount
	progress := p.ProgressAmounts
	balanceDate := p.BalanceDate
	switch kind {
	case entities.ProjectPaymentDeposit:
		deposit = amount
	case entities.ProjectPaymentProgress:
		progress = append(append([]float64{}, progress...), amount)
	case entities.ProjectPaymentBalance:
		now := time.Now().UTC()
		balanceDate = &now
	}

	updated, err := u.repo.UpdatePaymentsByID(ctx, p.ID, deposit, progress, balanceDate)
	if err != nil {
		return ProjectPaymentResult{}, err
	}
	if updated.ID == "" {
		return ProjectPaymentResult{}, ErrProjectNotFound
	}
	log.Printf("[project][usecase] payment recorded project_id=%s kind=%s amount=%v", updated.ID, kind, amount)

	result.Project = updated
	return result, nil
}

// enrichPaymentPayload fills the reconciliation fields the provider expects
// when the caller didn't provide them. The amount recorded on the project is
// the source of truth for the charge.
func enrichPaymentPayload(payload json.RawMessage, projectID string, kind entities.ProjectPaymentKind, amount float64) (json.RawMessage, error) {
	if !json.Valid(payload) {
		return nil, ErrInvalidPaymentPayload
	}

	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}
	if _, ok := m["external_reference"]; !ok {
		m["external_reference"] = projectID
	}
	if _, ok := m["description"]; !ok {
		m["description"] = fmt.Sprintf("Project %s %s payment", projectID, kind)
	}
	if amount > 0 {
		m["transaction_amount"] = amount
	}
	return json.Marshal(m)
}
