package stub_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onalabs/ona-backend/internal/domain"
	"github.com/onalabs/ona-backend/internal/provider/stub"
)

func TestComplete(t *testing.T) {
	completer := stub.New()

	require.Equal(t, domain.ProviderStub, completer.Name())

	// The response is fixed regardless of prompt content.
	for _, prompt := range []string{"a", "something entirely different"} {
		response := completer.Complete(context.Background(), prompt)

		require.Equal(t, domain.ProviderStub, response.Provider)
		require.Equal(t, "none", response.Model)
		require.Equal(t, stub.Output, response.Output)
		require.True(t, response.Stub)
		require.Nil(t, response.Error)
	}
}
