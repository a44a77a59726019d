package entity

import "github.com/shopspring/decimal"

// Contexto identidad explícita del operario y la empresa activa. Se construye
// por petición (claims del token) y se pasa a cada caso de uso; no existe
// estado de sesión global.
type Contexto struct {
	IDOperario int64
	Empresa    string
	Rol        string
}

// AcumuladoDiario suma de diferencias absolutas del día para un operario y un
// artículo, en unidades y en euros. Lo calcula el ERP; aquí solo se consume y
// se vuelve a pedir en cada validación.
type AcumuladoDiario struct {
	Unidades decimal.Decimal
	Euros    decimal.Decimal
}

// LimitesOperario límites diarios configurados para un operario.
// Un límite a 0 significa "sin límite" en esa dimensión.
type LimitesOperario struct {
	LimiteEuros    decimal.Decimal
	LimiteUnidades decimal.Decimal
}
