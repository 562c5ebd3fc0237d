package repository

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestConditions(t *testing.T) {
	var c conditions
	assert.Equal(t, "", c.where())

	c.eq("user_id", "u1")
	c.str("subject", "")
	c.int("grade", 3)
	c.str("tone", "friendly")

	assert.Equal(t, " WHERE user_id = $1 AND grade = $2 AND tone = $3", c.where())
	assert.Equal(t, []any{"u1", 3, "friendly"}, c.args)
}

func TestJSONArg(t *testing.T) {
	assert.Nil(t, jsonArg(nil))
	assert.Equal(t, `{"a":1}`, jsonArg(json.RawMessage(`{"a":1}`)))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(fmt.Errorf("plain")))
}
