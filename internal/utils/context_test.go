// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{
			name:   "value present",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, int64(42)),
			wantID: 42,
			wantOK: true,
		},
		{
			name:   "value missing",
			ctx:    context.Background(),
			wantID: 0,
			wantOK: false,
		},
		{
			name:   "wrong type",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, "not-an-int64"),
			wantID: 0,
			wantOK: false,
		},
		{
			name:   "zero value is still present",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, int64(0)),
			wantID: 0,
			wantOK: true,
		},
		{
			name:   "different key",
			ctx:    context.WithValue(context.Background(), contextKey("otherKey"), int64(99)),
			wantID: 0,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := GetUserIDFromContext(tt.ctx)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if userID != tt.wantID {
				t.Errorf("expected userID=%d, got %d", tt.wantID, userID)
			}
		})
	}
}
