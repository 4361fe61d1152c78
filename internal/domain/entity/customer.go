package entity

// Customer representa un cliente. En este servicio es solo lectura:
// alimenta el selector de cliente del formulario y el join del listado.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}
