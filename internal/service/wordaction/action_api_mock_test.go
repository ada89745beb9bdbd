package wordaction

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/myreader-engine/internal/domain"
	"sync"
)

var _ actionAPI = &actionAPIMock{}

type actionAPIMock struct {
	SetStatusFunc       func(ctx context.Context, wordID uuid.UUID, status domain.Status) error
	CreateQuickFunc     func(ctx context.Context, textID, position int, status domain.Status) (domain.QuickCreateResult, error)
	DeleteFunc          func(ctx context.Context, wordID uuid.UUID) error
	IncrementStatusFunc func(ctx context.Context, wordID uuid.UUID, up bool) (domain.IncrementResult, error)
	CreateMultiWordFunc func(ctx context.Context, draft domain.MultiWordDraft, status domain.Status, translation string) (domain.MultiWordResult, error)
	UpdateMultiWordFunc func(ctx context.Context, wordID uuid.UUID, update domain.MultiWordUpdate) error

	calls struct {
		SetStatus []struct {
			WordID uuid.UUID
			Status domain.Status
		}
		CreateQuick []struct {
			TextID   int
			Position int
			Status   domain.Status
		}
		Delete []struct {
			WordID uuid.UUID
		}
		IncrementStatus []struct {
			WordID uuid.UUID
			Up     bool
		}
		CreateMultiWord []struct {
			Draft       domain.MultiWordDraft
			Status      domain.Status
			Translation string
		}
		UpdateMultiWord []struct {
			WordID uuid.UUID
			Update domain.MultiWordUpdate
		}
	}
	lock sync.RWMutex
}

func (mock *actionAPIMock) SetStatus(ctx context.Context, wordID uuid.UUID, status domain.Status) error {
	if mock.SetStatusFunc == nil {
		panic("actionAPIMock.SetStatusFunc: method is nil but actionAPI.SetStatus was just called")
	}
	mock.lock.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, struct {
		WordID uuid.UUID
		Status domain.Status
	}{wordID, status})
	mock.lock.Unlock()
	return mock.SetStatusFunc(ctx, wordID, status)
}

func (mock *actionAPIMock) SetStatusCalls() []struct {
	WordID uuid.UUID
	Status domain.Status
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetStatus
}

func (mock *actionAPIMock) CreateQuick(ctx context.Context, textID, position int, status domain.Status) (domain.QuickCreateResult, error) {
	if mock.CreateQuickFunc == nil {
		panic("actionAPIMock.CreateQuickFunc: method is nil but actionAPI.CreateQuick was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateQuick = append(mock.calls.CreateQuick, struct {
		TextID   int
		Position int
		Status   domain.Status
	}{textID, position, status})
	mock.lock.Unlock()
	return mock.CreateQuickFunc(ctx, textID, position, status)
}

func (mock *actionAPIMock) CreateQuickCalls() []struct {
	TextID   int
	Position int
	Status   domain.Status
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateQuick
}

func (mock *actionAPIMock) Delete(ctx context.Context, wordID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("actionAPIMock.DeleteFunc: method is nil but actionAPI.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ WordID uuid.UUID }{wordID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, wordID)
}

func (mock *actionAPIMock) DeleteCalls() []struct{ WordID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *actionAPIMock) IncrementStatus(ctx context.Context, wordID uuid.UUID, up bool) (domain.IncrementResult, error) {
	if mock.IncrementStatusFunc == nil {
		panic("actionAPIMock.IncrementStatusFunc: method is nil but actionAPI.IncrementStatus was just called")
	}
	mock.lock.Lock()
	mock.calls.IncrementStatus = append(mock.calls.IncrementStatus, struct {
		WordID uuid.UUID
		Up     bool
	}{wordID, up})
	mock.lock.Unlock()
	return mock.IncrementStatusFunc(ctx, wordID, up)
}

func (mock *actionAPIMock) IncrementStatusCalls() []struct {
	WordID uuid.UUID
	Up     bool
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.IncrementStatus
}

func (mock *actionAPIMock) CreateMultiWord(ctx context.Context, draft domain.MultiWordDraft, status domain.Status, translation string) (domain.MultiWordResult, error) {
	if mock.CreateMultiWordFunc == nil {
		panic("actionAPIMock.CreateMultiWordFunc: method is nil but actionAPI.CreateMultiWord was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateMultiWord = append(mock.calls.CreateMultiWord, struct {
		Draft       domain.MultiWordDraft
		Status      domain.Status
		Translation string
	}{draft, status, translation})
	mock.lock.Unlock()
	return mock.CreateMultiWordFunc(ctx, draft, status, translation)
}

func (mock *actionAPIMock) CreateMultiWordCalls() []struct {
	Draft       domain.MultiWordDraft
	Status      domain.Status
	Translation string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateMultiWord
}

func (mock *actionAPIMock) UpdateMultiWord(ctx context.Context, wordID uuid.UUID, update domain.MultiWordUpdate) error {
	if mock.UpdateMultiWordFunc == nil {
		panic("actionAPIMock.UpdateMultiWordFunc: method is nil but actionAPI.UpdateMultiWord was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateMultiWord = append(mock.calls.UpdateMultiWord, struct {
		WordID uuid.UUID
		Update domain.MultiWordUpdate
	}{wordID, update})
	mock.lock.Unlock()
	return mock.UpdateMultiWordFunc(ctx, wordID, update)
}

func (mock *actionAPIMock) UpdateMultiWordCalls() []struct {
	WordID uuid.UUID
	Update domain.MultiWordUpdate
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateMultiWord
}
