package gen

import "testing"

func TestToPascal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"chat", "Chat"},
		{"chat_id", "ChatId"},
		{"chatTypePrivate", "ChatTypePrivate"},
		{"reply_to_message_id", "ReplyToMessageId"},
		{"ttl", "Ttl"},
		{"_leading", "Leading"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ToPascal(tt.in); got != tt.want {
			t.Errorf("ToPascal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToCamel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"chat_id", "chatId"},
		{"Title", "title"},
		{"type", "type_"},
		{"func", "func_"},
		{"range_start", "rangeStart"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ToCamel(tt.in); got != tt.want {
			t.Errorf("ToCamel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
