package validate

import (
	"strings"
	"testing"
)

func TestCreatePostSchema(t *testing.T) {
	tests := []struct {
		name      string
		values    map[string]string
		wantField string
		wantMsg   string
	}{
		{
			name:   "valid",
			values: map[string]string{"title": "Hi there", "content": "Hello world"},
		},
		{
			name:   "trims before checking",
			values: map[string]string{"title": "  Hi there  ", "content": "  Hello world  "},
		},
		{
			name:      "missing title",
			values:    map[string]string{"content": "Hello world"},
			wantField: "title",
			wantMsg:   "Title is required",
		},
		{
			name:      "whitespace-only title",
			values:    map[string]string{"title": "   ", "content": "Hello world"},
			wantField: "title",
			wantMsg:   "Title is required",
		},
		{
			name:      "title too short",
			values:    map[string]string{"title": "Hi", "content": "Hello world"},
			wantField: "title",
			wantMsg:   "Title must be at least 3 characters",
		},
		{
			name:      "title too long",
			values:    map[string]string{"title": strings.Repeat("a", 201), "content": "Hello world"},
			wantField: "title",
			wantMsg:   "Title cannot exceed 200 characters",
		},
		{
			name:      "content too short",
			values:    map[string]string{"title": "Hi there", "content": "Hey"},
			wantField: "content",
			wantMsg:   "Content must be at least 5 characters",
		},
		{
			name:      "content too long",
			values:    map[string]string{"title": "Hi there", "content": strings.Repeat("a", 10001)},
			wantField: "content",
			wantMsg:   "Content cannot exceed 10000 characters",
		},
		{
			// 150 runes but 450 bytes; bounds count characters
			name:   "multibyte title within character bounds",
			values: map[string]string{"title": strings.Repeat("題", 150), "content": "Hello world"},
		},
		{
			name:      "multibyte title below character minimum",
			values:    map[string]string{"title": "題名", "content": "Hello world"},
			wantField: "title",
			wantMsg:   "Title must be at least 3 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, errs := CreatePost.Apply(tt.values)
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Fatalf("unexpected errors: %+v", errs)
				}
				if normalized["title"] != strings.TrimSpace(tt.values["title"]) {
					t.Fatalf("title not trimmed: %q", normalized["title"])
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %+v", errs)
			}
			if errs[0].Field != tt.wantField || errs[0].Message != tt.wantMsg {
				t.Fatalf("got {%s %s}, want {%s %s}", errs[0].Field, errs[0].Message, tt.wantField, tt.wantMsg)
			}
		})
	}
}

func TestSignupSchema(t *testing.T) {
	tests := []struct {
		name      string
		values    map[string]string
		wantField string
		wantMsg   string
	}{
		{
			name:   "valid",
			values: map[string]string{"email": "a@b.com", "password": "Password123"},
		},
		{
			name:      "bad email",
			values:    map[string]string{"email": "not-an-email", "password": "Password123"},
			wantField: "email",
			wantMsg:   "Invalid email address",
		},
		{
			name:      "email missing tld",
			values:    map[string]string{"email": "a@b", "password": "Password123"},
			wantField: "email",
			wantMsg:   "Invalid email address",
		},
		{
			name:      "short password",
			values:    map[string]string{"email": "a@b.com", "password": "short"},
			wantField: "password",
			wantMsg:   "Password must be at least 8 characters",
		},
		{
			name:      "missing password",
			values:    map[string]string{"email": "a@b.com"},
			wantField: "password",
			wantMsg:   "Password is required",
		},
		{
			// bcrypt rejects inputs over 72 bytes; the schema must stop
			// them before they can turn into a 500
			name:      "password too long",
			values:    map[string]string{"email": "a@b.com", "password": strings.Repeat("a", 100)},
			wantField: "password",
			wantMsg:   "Password cannot exceed 72 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := Signup.Apply(tt.values)
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Fatalf("unexpected errors: %+v", errs)
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %+v", errs)
			}
			if errs[0].Field != tt.wantField || errs[0].Message != tt.wantMsg {
				t.Fatalf("got {%s %s}, want {%s %s}", errs[0].Field, errs[0].Message, tt.wantField, tt.wantMsg)
			}
		})
	}
}

func TestLoginSchemaRequiresBothFields(t *testing.T) {
	_, errs := Login.Apply(map[string]string{})
	if len(errs) != 2 {
		t.Fatalf("expected two errors, got %+v", errs)
	}

	// Login only requires presence; any email shape passes.
	_, errs = Login.Apply(map[string]string{"email": "whatever", "password": "x"})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
}
