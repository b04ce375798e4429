package ondc

import "testing"

func TestValidAction(t *testing.T) {
	t.Run("accepts the forwarded surface", func(t *testing.T) {
		for _, action := range []string{"search", "select", "init", "confirm", "status", "cancel", "update"} {
			if !ValidAction(action) {
				t.Errorf("%s should be a valid action", action)
			}
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, action := range []string{"", "track", "rating", "SEARCH", "on_search"} {
			if ValidAction(action) {
				t.Errorf("%s should be rejected", action)
			}
		}
	})
}
