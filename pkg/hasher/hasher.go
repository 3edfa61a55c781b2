// Package hasher encapsula el hashing de contraseñas detrás de una interfaz
// para mantener el dominio libre del algoritmo concreto.
package hasher

import "golang.org/x/crypto/bcrypt"

// Hasher contrato de hashing de contraseñas: una vía, con salt aleatorio por llamada.
type Hasher interface {
	// Hash genera un hash con salt a partir de la contraseña en texto plano.
	Hash(plain string) (string, error)

	// Check compara una contraseña en texto plano contra un hash almacenado.
	// Un hash malformado devuelve false, nunca un error al caller.
	Check(plain, hash string) bool
}

// Bcrypt implementación de Hasher sobre golang.org/x/crypto/bcrypt.
// bcrypt embebe el salt en el hash resultante y la comparación es de tiempo constante.
type Bcrypt struct {
	cost int
}

// NewBcrypt construye el hasher con el costo por defecto de bcrypt.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: bcrypt.DefaultCost}
}

var _ Hasher = (*Bcrypt)(nil)

// Hash genera el hash bcrypt de la contraseña.
func (b *Bcrypt) Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Check verifica la contraseña contra el hash. Cualquier error de bcrypt
// (mismatch, hash corrupto) se reporta igual: false.
func (b *Bcrypt) Check(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
