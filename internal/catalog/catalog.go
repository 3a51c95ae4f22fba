// Package catalog содержит статический каталог продуктов платформы.
// Каталог задаётся один раз на процесс и никогда не изменяется:
// все обработчики читают один и тот же срез в одном и том же порядке.
package catalog

import (
	"errors"

	"github.com/billennium/platform-api/internal/models"
)

// ErrNotFound возвращается, если продукт не найден ни по id, ни по slug.
var ErrNotFound = errors.New("product not found")

// List возвращает полный каталог продуктов в фиксированном порядке.
// Возвращаемый срез общий для всех вызовов, изменять его нельзя.
func List() []models.Product {
	return products
}

// Get ищет продукт по id или slug (точное совпадение с учетом регистра),
// первый найденный выигрывает.
func Get(idOrSlug string) (*models.Product, error) {
	for i := range products {
		if products[i].ID == idOrSlug || products[i].Slug == idOrSlug {
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}

var products = []models.Product{
	{
		ID:          "restoflow",
		Name:        "RestoFlow",
		Slug:        "restoflow",
		Description: "Software SaaS para gestión integral de restaurantes con facturación electrónica SRI",
		Icon:        "UtensilsCrossed",
		Features: []string{
			"Gestión de mesas en tiempo real",
			"Comandas a cocina automáticas",
			"Facturación electrónica SRI",
			"Control de inventario",
			"Cierre de caja por turnos",
			"División de cuentas",
		},
		Plans: []models.Plan{
			{
				Name:        "Emprendedor",
				PriceBefore: 40,
				PriceNow:    20,
				Billing:     "mensual",
				Features:    []string{"1 local", "1 usuario administrador", "3 usuarios meseros", "Facturación electrónica básica", "Reportes estándar", "Soporte básico"},
			},
			{
				Name:        "Empresarial",
				PriceBefore: 80,
				PriceNow:    50,
				Billing:     "mensual",
				Popular:     true,
				Features:    []string{"1 local", "Usuarios ilimitados", "Inventario con Kardex", "Control de cajas", "Facturación electrónica completa", "Dividir cuenta de clientes", "Soporte prioritario"},
			},
			{
				Name:        "Corporativo",
				PriceBefore: 120,
				PriceNow:    80,
				Billing:     "mensual",
				Features:    []string{"Multiempresa", "Multi local", "Usuarios ilimitados", "Inventario con Kardex", "Control de cajas", "Facturación electrónica", "Acompañamiento en implementación", "Dividir cuenta de clientes", "Recetas y costo por plato"},
			},
		},
	},
	{
		ID:          "sentinel",
		Name:        "Pedidos Sentinel",
		Slug:        "pedidos-sentinel",
		Description: "Aplicación de toma de pedidos enlazada a ERP Billennium para equipos de ventas",
		Icon:        "Smartphone",
		Features: []string{
			"Multi-empresa",
			"Sincronización con ERP",
			"Trabajo offline/online",
			"Generación de proformas PDF",
			"Dashboard de ventas",
			"Control de cartera",
		},
		Plans: []models.Plan{
			{
				Name:        "Básico",
				PriceBefore: 60,
				PriceNow:    30,
				Billing:     "mensual",
				Features:    []string{"1 vendedor", "1 empresa", "Pedidos y proformas", "Catálogo actualizado diario", "Envío por email/WhatsApp", "Trabajo offline/online", "Sincronización automática con ERP", "Soporte básico"},
			},
			{
				Name:        "Profesional",
				PriceBefore: 120,
				PriceNow:    60,
				Billing:     "mensual",
				Popular:     true,
				Features:    []string{"Hasta 5 vendedores", "Hasta 3 empresas", "Todo lo del Plan Básico", "Cartera (cobranza en ruta)", "Bancos y formas de pago", "Administración de documentos", "Autorización proforma→pedido", "Soporte profesional", "Reportes en PDF/Excel"},
			},
			{
				Name:        "Corporativo",
				PriceBefore: 250,
				PriceNow:    125,
				Billing:     "mensual",
				Features:    []string{"Hasta 20 vendedores", "Hasta 10 empresas", "Todo lo del Plan Profesional", "Dashboard avanzado de ventas y costos", "Por vendedor, empresa y periodo", "Configuración avanzada de parámetros", "Soporte prioritario"},
			},
		},
	},
	{
		ID:          "importaciones",
		Name:        "Módulo de Importaciones",
		Slug:        "modulo-importaciones",
		Description: "Control completo de procesos de importación, costos y órdenes de compra internacionales",
		Icon:        "Ship",
		Features: []string{
			"Control de órdenes de compra",
			"Seguimiento de embarques",
			"Cálculo de costos de importación",
			"Gestión de proveedores internacionales",
			"Reportes de costeo",
			"Integración con ERP",
		},
		Plans: []models.Plan{
			{
				Name:        "Estándar",
				PriceBefore: 80,
				PriceNow:    45,
				Billing:     "mensual",
				Features:    []string{"Hasta 50 importaciones/mes", "1 usuario", "Control de órdenes de compra", "Seguimiento de embarques", "Cálculo de costos básico", "Reportes estándar"},
			},
			{
				Name:        "Profesional",
				PriceBefore: 150,
				PriceNow:    85,
				Billing:     "mensual",
				Popular:     true,
				Features:    []string{"Importaciones ilimitadas", "Hasta 5 usuarios", "Todo lo del Plan Estándar", "Gestión de proveedores", "Reportes avanzados de costeo", "Integración con ERP", "Soporte prioritario"},
			},
		},
	},
	{
		ID:          "lopdp",
		Name:        "LOPDP",
		Slug:        "lopdp",
		Description: "Solución para cumplir la Ley Orgánica de Protección de Datos Personales en Ecuador",
		Icon:        "ShieldCheck",
		Features: []string{
			"Inventario de datos personales",
			"Gestión de consentimientos",
			"Registro de tratamientos",
			"Portal de derechos ARCO",
			"Alertas de cumplimiento",
			"Documentación legal automatizada",
		},
		Plans: []models.Plan{
			{
				Name:        "PYME",
				PriceBefore: 60,
				PriceNow:    35,
				Billing:     "mensual",
				Features:    []string{"Hasta 500 registros", "1 usuario administrador", "Inventario de datos", "Gestión de consentimientos básica", "Portal ARCO", "Documentación legal básica"},
			},
			{
				Name:        "Empresarial",
				PriceBefore: 120,
				PriceNow:    70,
				Billing:     "mensual",
				Popular:     true,
				Features:    []string{"Registros ilimitados", "Hasta 5 usuarios", "Todo lo del Plan PYME", "Registro de tratamientos completo", "Alertas de cumplimiento", "Reportes de auditoría", "Soporte prioritario"},
			},
		},
	},
	{
		ID:          "facturacion",
		Name:        "Facturación Electrónica",
		Slug:        "facturacion-electronica",
		Description: "Sistema en la nube para emitir comprobantes electrónicos cumpliendo normativa SRI",
		Icon:        "FileText",
		Features: []string{
			"Facturas electrónicas",
			"Notas de crédito/débito",
			"Retenciones",
			"Guías de remisión",
			"Liquidaciones de compra",
			"Reportes para declaraciones",
		},
		Plans: []models.Plan{
			{
				Name:        "Básico",
				PriceBefore: 25,
				PriceNow:    15,
				Billing:     "mensual",
				Features:    []string{"Hasta 100 documentos/mes", "1 usuario", "Facturas y notas de crédito", "Envío automático al SRI", "Portal de consulta", "Soporte por email"},
			},
			{
				Name:        "Profesional",
				PriceBefore: 50,
				PriceNow:    30,
				Billing:     "mensual",
				Popular:     true,
				Features:    []string{"Hasta 500 documentos/mes", "Hasta 3 usuarios", "Todos los tipos de comprobantes", "Retenciones automáticas", "Reportes para declaraciones", "Soporte prioritario"},
			},
			{
				Name:        "Empresarial",
				PriceBefore: 100,
				PriceNow:    60,
				Billing:     "mensual",
				Features:    []string{"Documentos ilimitados", "Usuarios ilimitados", "Todo lo del Plan Profesional", "API de integración", "Múltiples puntos de emisión", "Soporte dedicado"},
			},
		},
	},
	{
		ID:          "dashboard",
		Name:        "Dashboard Empresarial",
		Slug:        "dashboard-empresarial",
		Description: "Dashboard comercial y financiero para empresas enlazado a su propio ERP",
		Icon:        "BarChart3",
		Features: []string{
			"KPIs en tiempo real",
			"Análisis de ventas",
			"Control de cartera",
			"Indicadores financieros",
			"Reportes personalizados",
			"Integración con ERP",
		},
		Plans: []models.Plan{
			{
				Name:        "Estándar",
				PriceBefore: 45,
				PriceNow:    25,
				Billing:     "mensual",
				Features:    []string{"Dashboard básico", "KPIs principales", "1 usuario", "Datos del día anterior", "Reportes estándar"},
			},
			{
				Name:        "Profesional",
				PriceBefore: 90,
				PriceNow:    50,
				Billing:     "mensual",
				Popular:     true,
				Features:    []string{"Dashboard avanzado", "Todos los KPIs", "Hasta 5 usuarios", "Datos en tiempo real", "Reportes personalizados", "Alertas configurables", "Integración con ERP"},
			},
		},
	},
}
