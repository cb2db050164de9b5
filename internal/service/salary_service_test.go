package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/events"
)

type salaryFixture struct {
	svc        *SalaryService
	salaries   *memSalaryRepo
	employees  *memEmployeeRepo
	dispatcher *captureDispatcher
}

func newSalaryFixture() *salaryFixture {
	salaries := newMemSalaryRepo()
	employees := newMemEmployeeRepo()
	dispatcher := &captureDispatcher{}
	return &salaryFixture{
		svc:        NewSalaryService(salaries, employees, dispatcher),
		salaries:   salaries,
		employees:  employees,
		dispatcher: dispatcher,
	}
}

func TestSalaryCreateAndAmount(t *testing.T) {
	f := newSalaryFixture()

	created, err := f.svc.Create(context.Background(), SalaryInput{
		EmployeeID:       5,
		BaseSalary:       1000,
		SpecialAllowance: 200,
		Bonus:            50,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, 1250.0, created.Amount())
	assert.Zero(t, created.LastIncrement)
}

func TestSalaryCreateDuplicateIsForbidden(t *testing.T) {
	f := newSalaryFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, SalaryInput{EmployeeID: 5, BaseSalary: 1000})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, SalaryInput{EmployeeID: 5, BaseSalary: 2000})
	domainErr := requireDomainError(t, err)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, http.StatusForbidden, domainErr.HTTPStatus)
}

func TestSalaryCreateDoesNotRequireEmployee(t *testing.T) {
	f := newSalaryFixture()

	// No employee with id 999 exists; creation still succeeds.
	created, err := f.svc.Create(context.Background(), SalaryInput{EmployeeID: 999, BaseSalary: 500})
	require.NoError(t, err)
	assert.Equal(t, int64(999), created.EmployeeID)
}

func TestSalaryGetJoinsEmployeeSnapshot(t *testing.T) {
	f := newSalaryFixture()
	ctx := context.Background()

	emp := &domain.Employee{Name: "Bob", Age: 30, Position: "Engineer"}
	require.NoError(t, f.employees.Create(ctx, emp))

	_, err := f.svc.Create(ctx, SalaryInput{EmployeeID: emp.ID, BaseSalary: 1000, Bonus: 100})
	require.NoError(t, err)

	detail, err := f.svc.GetByEmployeeID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 1100.0, detail.Salary.Amount())
	assert.Equal(t, "Bob", detail.Employee.Name)
	assert.Equal(t, "Engineer", detail.Employee.Position)
}

func TestSalaryGetWithoutEmployeeKeepsZeroSnapshot(t *testing.T) {
	f := newSalaryFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, SalaryInput{EmployeeID: 999, BaseSalary: 500})
	require.NoError(t, err)

	detail, err := f.svc.GetByEmployeeID(ctx, 999)
	require.NoError(t, err)
	assert.Equal(t, domain.Employee{}, detail.Employee)
}

func TestSalaryGetNotFound(t *testing.T) {
	f := newSalaryFixture()

	_, err := f.svc.GetByEmployeeID(context.Background(), 42)
	domainErr := requireDomainError(t, err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestSalaryUpdateIncrementsBase(t *testing.T) {
	f := newSalaryFixture()
	ctx := context.Background()
	actor := events.Actor{UserID: 2, Username: "mia", Role: domain.RoleManager}

	_, err := f.svc.Create(ctx, SalaryInput{EmployeeID: 5, BaseSalary: 1000, SpecialAllowance: 200})
	require.NoError(t, err)

	detail, err := f.svc.Update(ctx, actor, 5, 150)
	require.NoError(t, err)
	assert.Equal(t, 1150.0, detail.Salary.BaseSalary)
	assert.Equal(t, 150.0, detail.Salary.LastIncrement)
	assert.Equal(t, 1350.0, detail.Salary.Amount())

	// second increment compounds on the stored base
	detail, err = f.svc.Update(ctx, actor, 5, 50)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, detail.Salary.BaseSalary)
	assert.Equal(t, 50.0, detail.Salary.LastIncrement)

	published := f.dispatcher.published()
	require.Len(t, published, 2)
	assert.Equal(t, events.EventSalaryChanged, published[0].Type)

	payload, ok := published[1].Payload.(events.SalaryChangedPayload)
	require.True(t, ok)
	assert.Equal(t, int64(5), payload.EmployeeID)
	assert.Equal(t, 50.0, payload.Increment)
	assert.Equal(t, 1400.0, payload.NewAmount)
}

func TestSalaryUpdateNotFound(t *testing.T) {
	f := newSalaryFixture()

	_, err := f.svc.Update(context.Background(), events.Actor{}, 42, 100)
	domainErr := requireDomainError(t, err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Empty(t, f.dispatcher.published())
}

func TestSalaryDelete(t *testing.T) {
	f := newSalaryFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, SalaryInput{EmployeeID: 5, BaseSalary: 1000})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, 5))

	_, err = f.svc.GetByEmployeeID(ctx, 5)
	requireDomainError(t, err)
}

func TestSalaryDeleteNotFound(t *testing.T) {
	f := newSalaryFixture()

	err := f.svc.Delete(context.Background(), 42)
	domainErr := requireDomainError(t, err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}
