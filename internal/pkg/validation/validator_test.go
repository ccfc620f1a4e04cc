package validation_test

import (
	"testing"

	"github.com/prasetia/dompet/internal/pkg/models"
	"github.com/prasetia/dompet/internal/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CreateTransactionRequest(t *testing.T) {
	v := validation.NewEchoValidator()

	amont := 10.0
	zero := 0.0

	valid := models.CreateTransactionRequest{Title: "Salary", Amont: &amont, Type: "credit"}
	assert.NoError(t, v.Validate(&valid))

	// An explicit zero amount is required-satisfying because the field is a pointer
	zeroAmount := models.CreateTransactionRequest{Title: "Nothing", Amont: &zero, Type: "debit"}
	assert.NoError(t, v.Validate(&zeroAmount))

	missingTitle := models.CreateTransactionRequest{Amont: &amont, Type: "credit"}
	assert.Error(t, v.Validate(&missingTitle))

	missingAmount := models.CreateTransactionRequest{Title: "Salary", Type: "credit"}
	assert.Error(t, v.Validate(&missingAmount))

	badType := models.CreateTransactionRequest{Title: "Salary", Amont: &amont, Type: "transfer"}
	assert.Error(t, v.Validate(&badType))
}

func TestProblems_ReportsViolatedFields(t *testing.T) {
	v := validation.NewEchoValidator()

	req := models.CreateTransactionRequest{Type: "transfer"}
	err := v.Validate(&req)
	require.Error(t, err)

	fields := validation.Problems(err)
	require.Len(t, fields, 3)

	byField := map[string]string{}
	for _, f := range fields {
		byField[f.Field] = f.Rule
	}
	assert.Equal(t, "required", byField["Title"])
	assert.Equal(t, "required", byField["Amont"])
	assert.Equal(t, "oneof", byField["Type"])
}

func TestProblems_NonValidationError(t *testing.T) {
	assert.Nil(t, validation.Problems(assert.AnError))
}
