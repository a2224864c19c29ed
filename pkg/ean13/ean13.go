// Package ean13 calcula y valida el dígito verificador EAN-13 de los códigos
// internos de producto. Los códigos internos usan el prefijo reservado "990"
// para no chocar con UPC/EAN reales.
package ean13

import "fmt"

// InternalPrefix prefijo de 3 dígitos reservado para códigos internos.
const InternalPrefix = "990"

// CheckDigit calcula el dígito verificador para un cuerpo de 12 dígitos.
// Suma ponderada con pesos 1 y 3 alternados de izquierda a derecha; el dígito
// verificador completa la suma a múltiplo de 10.
func CheckDigit(body string) (byte, error) {
	if len(body) != 12 || !allDigits(body) {
		return 0, fmt.Errorf("ean13: se requieren 12 dígitos, se recibió %q", body)
	}
	var sum int
	for i, ch := range []byte(body) {
		n := int(ch - '0')
		if i%2 == 0 {
			sum += n
		} else {
			sum += n * 3
		}
	}
	return byte('0' + (10-sum%10)%10), nil
}

// Make genera un código EAN-13 interno a partir del prefijo de 3 dígitos y una
// secuencia (se rellena a 9 dígitos).
func Make(prefix string, seq int) (string, error) {
	if len(prefix) != 3 || !allDigits(prefix) {
		return "", fmt.Errorf("ean13: el prefijo debe tener 3 dígitos, se recibió %q", prefix)
	}
	if seq < 0 || seq > 999_999_999 {
		return "", fmt.Errorf("ean13: secuencia fuera de rango: %d", seq)
	}
	body := fmt.Sprintf("%s%09d", prefix, seq)
	cd, err := CheckDigit(body)
	if err != nil {
		return "", err
	}
	return body + string(cd), nil
}

// Valid indica si code es un EAN-13 con dígito verificador correcto.
func Valid(code string) bool {
	if len(code) != 13 || !allDigits(code) {
		return false
	}
	cd, err := CheckDigit(code[:12])
	if err != nil {
		return false
	}
	return code[12] == cd
}

func allDigits(s string) bool {
	for _, ch := range []byte(s) {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
