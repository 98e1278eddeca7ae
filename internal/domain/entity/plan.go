package entity

// PlanEntry entrada del catálogo de planes. La clave del catálogo es el
// nombre (comparado sin distinguir mayúsculas): renombrar un plan desvincula
// los clientes que lo referenciaban, y eso se acepta como comportamiento.
type PlanEntry struct {
	Name  string `json:"name"`
	Price float64 `json:"price"`
}
