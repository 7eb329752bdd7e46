package cli_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-docs/internal/interfaces/cli"
)

func TestReadLine_NoConsumeMasAllaDelSalto(t *testing.T) {
	in := strings.NewReader("gestor@empresa.com\r\nclave-pegada\n")

	email, err := cli.ReadLine(in)
	require.NoError(t, err)
	assert.Equal(t, "gestor@empresa.com", email)

	resto, err := io.ReadAll(in)
	require.NoError(t, err)
	assert.Equal(t, "clave-pegada\n", string(resto), "la contraseña queda intacta para la lectura sin eco")
}

func TestReadLine_SinSaltoFinal(t *testing.T) {
	email, err := cli.ReadLine(strings.NewReader("gestor@empresa.com"))
	require.NoError(t, err)
	assert.Equal(t, "gestor@empresa.com", email)
}
