package memory

import (
	"testing"

	"cardgame/internal/ports"
	"cardgame/internal/ports/storetest"
)

func TestStoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) ports.UserStore {
		return NewStore()
	})
}
