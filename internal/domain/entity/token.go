package entity

// Token credencial opaca de sesión: se crea en login y se destruye en
// logout. No caduca.
type Token struct {
	ID     int64
	Key    string
	UserID int64
}
