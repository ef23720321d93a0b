package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/bracket-seeding/brackets"
	"github.com/Dosada05/bracket-seeding/seeding"
)

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckAffectedRows(t *testing.T) {
	assert.NoError(t, checkAffectedRows(fakeResult{rows: 1}, ErrPlanNotFound))
	assert.ErrorIs(t, checkAffectedRows(fakeResult{rows: 0}, ErrPlanNotFound), ErrPlanNotFound)
	assert.Error(t, checkAffectedRows(fakeResult{err: errors.New("driver")}, ErrPlanNotFound))
}

func TestIsUniqueViolation(t *testing.T) {
	conflict := &pq.Error{Code: "23505", Constraint: "seed_plans_name_key"}

	assert.True(t, isUniqueViolation(conflict, "seed_plans_name_key"))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", conflict), "seed_plans_name_key"))
	assert.False(t, isUniqueViolation(conflict, "seed_plans_ref_key"))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23514", Constraint: "seed_plans_name_key"}, "seed_plans_name_key"))
	assert.False(t, isUniqueViolation(errors.New("plain"), "seed_plans_name_key"))
}

func TestColumnRoundTrip(t *testing.T) {
	seeds := []seeding.Seed{seeding.Known("A"), seeding.Bye(), seeding.Unresolved()}
	data, err := marshalColumn("seeds", seeds)
	require.NoError(t, err)
	assert.JSONEq(t, `["A",null,{"id":null}]`, string(data))

	var decoded []seeding.Seed
	require.NoError(t, unmarshalColumn("seeds", data, &decoded))
	assert.Equal(t, seeds, decoded)

	var settings brackets.Settings
	require.NoError(t, unmarshalColumn("settings", nil, &settings))
	assert.Equal(t, brackets.Settings{}, settings)

	assert.Error(t, unmarshalColumn("stage", []byte("{"), &settings))
}
