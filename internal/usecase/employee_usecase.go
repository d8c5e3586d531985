package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"estetica_pro/internal/domain/entities"
	"estetica_pro/internal/usecase/interfaces"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidPIN       = errors.New("pin must be exactly 4 digits")
	ErrPINRejected      = errors.New("no active employee matches this pin")
)

var pinPattern = regexp.MustCompile(`^\d{4}$`)

// IEmployeeUseCase manages staff records and the PIN credential used by the
// technician flows.
type IEmployeeUseCase interface {
	Create(ctx context.Context, e entities.Employee, pin string) (entities.Employee, error)
	Update(ctx context.Context, id string, patch map[string]any) (entities.Employee, error)
	SetPIN(ctx context.Context, id, pin string) error
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	GetAll(ctx context.Context) ([]entities.Employee, error)
	Deactivate(ctx context.Context, id string) error
	LoginWithPIN(ctx context.Context, pin string) (entities.Employee, error)
}

type EmployeeUseCase struct {
	repo interfaces.IEmployeeRepository
}

var _ IEmployeeUseCase = (*EmployeeUseCase)(nil)

func NewEmployeeUseCase(repo interfaces.IEmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

func (u *EmployeeUseCase) Create(ctx context.Context, e entities.Employee, pin string) (entities.Employee, error) {
	hash, err := hashPIN(pin)
	if err != nil {
		return entities.Employee{}, err
	}
	e.PINHash = hash
	e.Active = true
	return u.repo.Create(ctx, e)
}

func (u *EmployeeUseCase) Update(ctx context.Context, id string, patch map[string]any) (entities.Employee, error) {
	// The hash only changes through SetPIN.
	delete(patch, "pin_hash")
	updated, err := u.repo.Update(ctx, strings.TrimSpace(id), patch)
	if err != nil {
		return entities.Employee{}, err
	}
	if updated == nil {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	return *updated, nil
}

func (u *EmployeeUseCase) SetPIN(ctx context.Context, id, pin string) error {
	hash, err := hashPIN(pin)
	if err != nil {
		return err
	}
	updated, err := u.repo.Update(ctx, strings.TrimSpace(id), map[string]any{"pin_hash": hash})
	if err != nil {
		return err
	}
	if updated == nil {
		return ErrEmployeeNotFound
	}
	return nil
}

func (u *EmployeeUseCase) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	e, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Employee{}, err
	}
	if e == nil {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	return *e, nil
}

func (u *EmployeeUseCase) GetAll(ctx context.Context) ([]entities.Employee, error) {
	return u.repo.GetAll(ctx)
}

func (u *EmployeeUseCase) Deactivate(ctx context.Context, id string) error {
	updated, err := u.repo.Update(ctx, strings.TrimSpace(id), map[string]any{"active": false})
	if err != nil {
		return err
	}
	if updated == nil {
		return ErrEmployeeNotFound
	}
	return nil
}

// LoginWithPIN matches the PIN against every active employee's hash. PINs are
// not unique by construction; the first match wins, which mirrors how the
// shop uses them (short shared-device credential, not an identity proof).
func (u *EmployeeUseCase) LoginWithPIN(ctx context.Context, pin string) (entities.Employee, error) {
	if !pinPattern.MatchString(pin) {
		return entities.Employee{}, ErrInvalidPIN
	}
	all, err := u.repo.GetAll(ctx)
	if err != nil {
		return entities.Employee{}, err
	}
	for _, e := range all {
		if !e.Active {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(e.PINHash), []byte(pin)) == nil {
			return e, nil
		}
	}
	return entities.Employee{}, ErrPINRejected
}

func hashPIN(pin string) (string, error) {
	if !pinPattern.MatchString(pin) {
		return "", ErrInvalidPIN
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
