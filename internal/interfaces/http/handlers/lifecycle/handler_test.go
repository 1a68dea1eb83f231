package lifecycle

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expohub/expohub/internal/application/lifecycle/usecases"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/interfaces/http/handlers/testutil"
	"github.com/expohub/expohub/internal/shared/errors"
)

func transition(ref lifecycle.EntityRef, from, to lvo.Status) *usecases.TransitionResult {
	return &usecases.TransitionResult{Ref: ref, FromStatus: from, ToStatus: to, Changed: from != to}
}

type mockSubmitUC struct{ got usecases.SubmitForReviewCommand }

func (m *mockSubmitUC) Execute(_ context.Context, cmd usecases.SubmitForReviewCommand) (*usecases.TransitionResult, error) {
	m.got = cmd
	return transition(cmd.Ref, lvo.StatusDraft, lvo.StatusPending), nil
}

type mockPublishUC struct{ err error }

func (m *mockPublishUC) Execute(_ context.Context, cmd usecases.PublishCommand) (*usecases.TransitionResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return transition(cmd.Ref, lvo.StatusApproved, lvo.StatusPublished), nil
}

type mockCancelUC struct{ got usecases.CancelCommand }

func (m *mockCancelUC) Execute(_ context.Context, cmd usecases.CancelCommand) (*usecases.TransitionResult, error) {
	m.got = cmd
	return transition(cmd.Ref, lvo.StatusPublished, lvo.StatusCancelled), nil
}

type mockSuspendUC struct{ got usecases.SuspendCommand }

func (m *mockSuspendUC) Execute(_ context.Context, cmd usecases.SuspendCommand) (*usecases.TransitionResult, error) {
	m.got = cmd
	return transition(cmd.Ref, lvo.StatusActive, lvo.StatusSuspended), nil
}

type mockModerateUC struct {
	got     usecases.ModerateCommand
	warning string
}

func (m *mockModerateUC) Execute(_ context.Context, cmd usecases.ModerateCommand) (*usecases.TransitionResult, error) {
	m.got = cmd
	r := transition(cmd.Ref, lvo.StatusPending, cmd.Decision.TargetStatus())
	r.EmailWarning = m.warning
	return r, nil
}

type mockBulkUC struct{ got usecases.BulkModerateCommand }

func (m *mockBulkUC) Execute(_ context.Context, cmd usecases.BulkModerateCommand) (*usecases.BulkModerateResult, error) {
	m.got = cmd
	result := &usecases.BulkModerateResult{}
	for _, id := range cmd.IDs {
		result.Items = append(result.Items, usecases.BulkItemResult{ID: id, Success: true, Status: "approved"})
		result.Succeeded++
	}
	return result, nil
}

type handlerDeps struct {
	submit   *mockSubmitUC
	publish  *mockPublishUC
	cancel   *mockCancelUC
	suspend  *mockSuspendUC
	moderate *mockModerateUC
	bulk     *mockBulkUC
}

func newTestHandler() (*Handler, *handlerDeps) {
	d := &handlerDeps{
		submit:   &mockSubmitUC{},
		publish:  &mockPublishUC{},
		cancel:   &mockCancelUC{},
		suspend:  &mockSuspendUC{},
		moderate: &mockModerateUC{},
		bulk:     &mockBulkUC{},
	}
	return NewHandler(d.submit, d.publish, d.cancel, d.suspend, d.moderate, d.bulk, testutil.NewMockLogger()), d
}

func TestHandler_Submit(t *testing.T) {
	h, d := newTestHandler()
	c, w := testutil.NewTestContext(http.MethodPost, "/exhibitions/12/submit", nil)
	testutil.SetURLParam(c, "id", "12")
	testutil.SetAuthContext(c, testutil.Organizer(3))

	h.Submit(lvo.KindExhibition)(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, lifecycle.ExhibitionRef(12), d.submit.got.Ref)
	assert.Contains(t, w.Body.String(), `"to_status":"pending"`)
	assert.Contains(t, w.Body.String(), `"changed":true`)
}

func TestHandler_Publish_InvalidTransition(t *testing.T) {
	h, d := newTestHandler()
	d.publish.err = errors.NewConflictError("cannot publish from draft")
	c, w := testutil.NewTestContext(http.MethodPost, "/companies/4/publish", nil)
	testutil.SetURLParam(c, "id", "4")

	h.Publish(lvo.KindCompany)(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Cancel(t *testing.T) {
	t.Run("without body", func(t *testing.T) {
		h, d := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/exhibitions/12/cancel", nil)
		testutil.SetURLParam(c, "id", "12")

		h.Cancel(lvo.KindExhibition)(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, d.cancel.got.Reason)
	})

	t.Run("with reason", func(t *testing.T) {
		h, d := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/exhibitions/12/cancel", ReasonRequest{Reason: "venue closed"})
		testutil.SetURLParam(c, "id", "12")

		h.Cancel(lvo.KindExhibition)(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "venue closed", d.cancel.got.Reason)
	})
}

func TestHandler_Moderate(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		id       string
		body     ModerateRequest
		wantCode int
	}{
		{name: "approve exhibition", kind: "exhibition", id: "5", body: ModerateRequest{Decision: "approve"}, wantCode: http.StatusOK},
		{name: "reject company", kind: "company", id: "5", body: ModerateRequest{Decision: "reject", Reason: "spam"}, wantCode: http.StatusOK},
		{name: "unknown decision", kind: "exhibition", id: "5", body: ModerateRequest{Decision: "maybe"}, wantCode: http.StatusBadRequest},
		{name: "unknown kind", kind: "review", id: "5", body: ModerateRequest{Decision: "approve"}, wantCode: http.StatusBadRequest},
		{name: "bad id", kind: "exhibition", id: "x", body: ModerateRequest{Decision: "approve"}, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler()
			c, w := testutil.NewTestContext(http.MethodPost, "/moderation/"+tt.kind+"/"+tt.id, tt.body)
			testutil.SetURLParam(c, "kind", tt.kind)
			testutil.SetURLParam(c, "id", tt.id)
			testutil.SetAuthContext(c, testutil.Admin(1))

			h.Moderate(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestHandler_Moderate_EmailWarning(t *testing.T) {
	h, d := newTestHandler()
	d.moderate.warning = "notification email could not be sent"
	c, w := testutil.NewTestContext(http.MethodPost, "/moderation/exhibition/5", ModerateRequest{Decision: "approve"})
	testutil.SetURLParam(c, "kind", "exhibition")
	testutil.SetURLParam(c, "id", "5")

	h.Moderate(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, []string{"notification email could not be sent"}, resp.Warnings)
	assert.Equal(t, lvo.DecisionApprove, d.moderate.got.Decision)
}

func TestHandler_Suspend_RequiresReason(t *testing.T) {
	h, _ := newTestHandler()
	c, w := testutil.NewTestContext(http.MethodPost, "/moderation/company/4/suspend", SuspendRequest{})
	testutil.SetURLParam(c, "kind", "company")
	testutil.SetURLParam(c, "id", "4")

	h.Suspend(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BulkModerate(t *testing.T) {
	h, d := newTestHandler()
	c, w := testutil.NewTestContext(http.MethodPost, "/moderation/exhibition/bulk", BulkModerateRequest{
		IDs:      []uint{1, 2, 3},
		Decision: "approve",
	})
	testutil.SetURLParam(c, "kind", "exhibition")
	testutil.SetAuthContext(c, testutil.Admin(1))

	h.BulkModerate(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, lvo.KindExhibition, d.bulk.got.Kind)
	assert.Equal(t, []uint{1, 2, 3}, d.bulk.got.IDs)
	assert.Contains(t, w.Body.String(), `"succeeded":3`)
}
