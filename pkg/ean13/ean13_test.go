package ean13_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/tiendita-pos/pkg/ean13"
)

// TestCheckDigit_VectorConocido valida contra un EAN-13 real publicado:
// 4006381333931 (body 400638133393, dígito verificador 1).
func TestCheckDigit_VectorConocido(t *testing.T) {
	cd, err := ean13.CheckDigit("400638133393")
	require.NoError(t, err)
	assert.Equal(t, byte('1'), cd, "el dígito verificador debe coincidir con el EAN publicado")
}

func TestMake_CodigoInterno(t *testing.T) {
	code, err := ean13.Make(ean13.InternalPrefix, 1)
	require.NoError(t, err)
	assert.Len(t, code, 13, "un EAN-13 tiene exactamente 13 dígitos")
	assert.Equal(t, "9900000000011", code)
	assert.True(t, ean13.Valid(code), "todo código generado debe validar")
}

// TestMake_Determinista verifica que la misma secuencia produce siempre el
// mismo código.
func TestMake_Determinista(t *testing.T) {
	c1, err1 := ean13.Make("990", 42)
	c2, err2 := ean13.Make("990", 42)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, c1, c2)
}

func TestMake_SecuenciasDistintas(t *testing.T) {
	c1, _ := ean13.Make("990", 1)
	c2, _ := ean13.Make("990", 2)
	assert.NotEqual(t, c1, c2, "secuencias distintas deben producir códigos distintos")
}

func TestValid_DigitoIncorrecto(t *testing.T) {
	assert.False(t, ean13.Valid("9900000000012"), "un dígito verificador alterado no debe validar")
	assert.False(t, ean13.Valid("990000000001"), "12 dígitos no son un EAN-13")
	assert.False(t, ean13.Valid("99000000000AB"))
}

func TestCheckDigit_ErrorLongitud(t *testing.T) {
	_, err := ean13.CheckDigit("12345")
	assert.Error(t, err, "CheckDigit requiere exactamente 12 dígitos")
}

func TestMake_PrefijoInvalido(t *testing.T) {
	_, err := ean13.Make("99", 1)
	assert.Error(t, err, "el prefijo debe tener 3 dígitos")
	_, err = ean13.Make("990", -1)
	assert.Error(t, err, "la secuencia no puede ser negativa")
}
