package ports

import "testing"

func TestKeyEvent_String(t *testing.T) {
	tests := []struct {
		key  KeyEvent
		want string
	}{
		{KeyQuit, "quit"},
		{KeyTogglePause, "toggle_pause"},
		{KeyOther, "other"},
		{KeyEvent(42), "other"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("KeyEvent(%d).String() = %q, want %q", int(tt.key), got, tt.want)
		}
	}
}
