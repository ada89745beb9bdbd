//go:build e2e

package e2e_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myreader-engine/internal/domain"
	"github.com/heartmarshall/myreader-engine/internal/service/wordaction"
)

// TestE2E_APIErrorLeavesModelUntouched verifies a server-side failure
// surfaces its message verbatim and changes nothing, and that the next
// action recovers.
func TestE2E_APIErrorLeavesModelUntouched(t *testing.T) {
	ts := setupSession(t, "The\nquick\nfox\n.\n", nil)
	ctx := context.Background()

	ts.API.FailNext("Term already exists")

	res := ts.Actions.ChangeStatus(ctx, wordaction.ChangeStatusInput{
		Selection: ts.selectionAt(t, 3),
		Status:    domain.StatusLearning1,
	})
	require.False(t, res.Success)
	assert.Equal(t, "Term already exists", res.Error, "server message passes through verbatim")
	assert.Contains(t, ts.UI.errors, "Term already exists")

	tok, _ := ts.Document.TokenAt(3)
	assert.Equal(t, domain.StatusUnknown, tok.Status)
	assert.Nil(t, tok.WordID)
	assert.Equal(t, 0, ts.API.Len())

	// The failure is not sticky.
	res = ts.Actions.ChangeStatus(ctx, wordaction.ChangeStatusInput{
		Selection: ts.selectionAt(t, 3),
		Status:    domain.StatusLearning1,
	})
	require.True(t, res.Success, res.Error)
	tok, _ = ts.Document.TokenAt(3)
	assert.Equal(t, domain.StatusLearning1, tok.Status)
}

// TestE2E_StaleResponseDiscarded overlaps two status changes for the same
// word: the response that began first arrives last and must not overwrite
// the newer state.
func TestE2E_StaleResponseDiscarded(t *testing.T) {
	ts := setupSession(t, "The\nquick\nfox\n.\n", nil)
	ctx := context.Background()
	sel := ts.selectionAt(t, 3)

	entered, release := ts.API.HoldQuickCreate(domain.StatusLearning1)

	done := make(chan wordaction.Result, 1)
	go func() {
		done <- ts.Actions.ChangeStatus(ctx, wordaction.ChangeStatusInput{
			Selection: sel,
			Status:    domain.StatusLearning1,
		})
	}()

	// The first request is parked inside the server; a newer one for the
	// same word completes in the meantime.
	<-entered
	newer := ts.Actions.ChangeStatus(ctx, wordaction.ChangeStatusInput{
		Selection: sel,
		Status:    domain.StatusLearning5,
	})
	require.True(t, newer.Success, newer.Error)
	require.False(t, newer.Stale)

	close(release)
	older := <-done
	require.True(t, older.Success, older.Error)
	assert.True(t, older.Stale, "the response that began first must be marked stale")

	tok, _ := ts.Document.TokenAt(3)
	assert.Equal(t, domain.StatusLearning5, tok.Status, "newer state wins")
	require.NotNil(t, tok.WordID)
	assert.Equal(t, *newer.TermID, *tok.WordID)

	assert.Contains(t, ts.UI.messages, "Level 5 (Learned)")
	assert.NotContains(t, ts.UI.messages, "Level 1 (Learning)", "stale responses announce nothing")
}
