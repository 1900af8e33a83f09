package postgresql

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLockNotAvailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			"lock not available",
			errors.New("ERROR: could not obtain lock on row in relation \"payroll_batches\" (SQLSTATE 55P03)"),
			true,
		},
		{"no rows", errors.New("no rows in result set"), false},
		{"unique violation", errors.New("duplicate key value violates unique constraint \"uk_payrolls_batch_employee\" (SQLSTATE 23505)"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isLockNotAvailable(tt.err))
		})
	}
}
