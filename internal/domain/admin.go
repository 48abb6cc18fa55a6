package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SalesData struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

type ProductDistribution struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type TopProduct struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Image    string          `json:"image"`
	Sales    int             `json:"sales"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type UserGrowth struct {
	Month string `json:"month"`
	Users int    `json:"users"`
}

type AnalyticsStats struct {
	SalesData           []SalesData           `json:"salesData"`
	ProductDistribution []ProductDistribution `json:"productDistribution"`
	TopProducts         []TopProduct          `json:"topProducts"`
	UserGrowthData      []UserGrowth          `json:"userGrowthData"`
	TotalUsers          int                   `json:"totalUsers"`
	ActiveUsers         int                   `json:"activeUsers"`
	NewUsers            int                   `json:"newUsers"`
	TotalRevenue        decimal.Decimal       `json:"totalRevenue"`
	TotalOrders         int                   `json:"totalOrders"`
	AverageOrderValue   decimal.Decimal       `json:"averageOrderValue"`
}

type AuditLogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Action    string    `json:"action"`
	Resource  string    `json:"resource"`
	Details   string    `json:"details"`
	Status    string    `json:"status"`
}

type AuditLogFilter struct {
	StartDate string
	EndDate   string
	User      string
	Action    string
	Resource  string
	Status    string
	Search    string
}

type AuditLogPage struct {
	Logs     []AuditLogEntry `json:"logs"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

type SecurityCheckStatus string

const (
	SecurityPass    SecurityCheckStatus = "pass"
	SecurityFail    SecurityCheckStatus = "fail"
	SecurityWarning SecurityCheckStatus = "warning"
)

type SecurityCheck struct {
	ID              string              `json:"id"`
	CheckName       string              `json:"checkName"`
	Status          SecurityCheckStatus `json:"status"`
	Description     string              `json:"description"`
	LastChecked     time.Time           `json:"lastChecked"`
	Recommendations []string            `json:"recommendations,omitempty"`
}
