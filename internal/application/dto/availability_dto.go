package dto

// SyncAvailabilityRequest body para POST /api/availability/sync.
// Con ProductID sincroniza ese producto; si no, corre el lote con la ventana
// indicada (0 = la configurada por defecto).
type SyncAvailabilityRequest struct {
	ProductID    string `json:"product_id,omitempty"`
	SinceMinutes int    `json:"since_minutes,omitempty"`
}

// ProductSyncDetailResponse antes/después de la bandera de un producto.
type ProductSyncDetailResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Before    bool   `json:"before"`
	After     bool   `json:"after"`
}

// SyncReportResponse reporte de una corrida de sincronización.
type SyncReportResponse struct {
	Scanned  int                         `json:"scanned"`
	Enabled  int                         `json:"enabled"`
	Disabled int                         `json:"disabled"`
	Details  []ProductSyncDetailResponse `json:"details,omitempty"`
}

// ProductAvailabilityResponse bandera vigente de un producto del catálogo.
type ProductAvailabilityResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// ProductAvailabilityListResponse página de banderas del catálogo.
type ProductAvailabilityListResponse struct {
	Items []ProductAvailabilityResponse `json:"items"`
	Page  PageResponse                  `json:"page"`
}
