// Package sealbox cifra blobs pequeños (credenciales guardadas) con una passphrase.
//
// Formato: JSON con versión, sal, parámetros scrypt y el texto cifrado
// (ChaCha20-Poly1305, la sal va como datos asociados).
package sealbox

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const formatVersion = 1

// ErrWrongPassphrase la passphrase es incorrecta o el blob fue modificado.
var ErrWrongPassphrase = errors.New("sealbox: passphrase incorrecta o blob corrupto")

// Params parámetros de derivación scrypt.
type Params struct {
	N, R, P int
}

// DefaultParams valores usados por Seal.
var DefaultParams = Params{N: 1 << 15, R: 8, P: 1}

type blob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// Seal cifra raw con DefaultParams.
func Seal(passphrase string, raw []byte) ([]byte, error) {
	return SealWith(passphrase, raw, DefaultParams)
}

// SealWith cifra raw derivando la clave de passphrase con los parámetros dados.
func SealWith(passphrase string, raw []byte, p Params) ([]byte, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("sealbox: passphrase vacía")
	}
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, fmt.Errorf("sealbox: generar sal: %w", err)
	}
	aead, err := newAEAD(passphrase, salt[:], p)
	if err != nil {
		return nil, err
	}
	// nonce cero: cada Seal usa una sal nueva y por lo tanto una clave nueva
	var nonce [chacha20poly1305.NonceSize]byte
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(blob{V: formatVersion, Salt: salt[:], N: p.N, R: p.R, P: p.P, Cipher: ct})
}

// Open descifra un blob producido por Seal.
func Open(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, fmt.Errorf("sealbox: blob ilegible: %w", err)
	}
	if bl.V > formatVersion {
		return nil, fmt.Errorf("sealbox: versión de formato no soportada %d", bl.V)
	}
	aead, err := newAEAD(passphrase, bl.Salt, Params{N: bl.N, R: bl.R, P: bl.P})
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func newAEAD(passphrase string, salt []byte, p Params) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, p.N, p.R, p.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("sealbox: derivar clave: %w", err)
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("sealbox: inicializar cifrador: %w", err)
	}
	return aead, nil
}
