package wildberries

import (
	"context"

	recordv1 "github.com/muhammadchandra19/wb-report/internal/domain/record/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

const (
	// SalesPath is the sales-list endpoint.
	SalesPath = "/api/v1/supplier/sales"
	// ReportDetailPath is the detailed report endpoint, the API equivalent of "export to Excel".
	ReportDetailPath = "/api/v1/supplier/reportDetailByPeriod"
	// StocksPath is the warehouse stocks endpoint.
	StocksPath = "/api/v1/supplier/stocks"

	// SalesRowCap is the most rows the sales endpoint returns in one response.
	SalesRowCap = 80000
	// DefaultReportLimit is the page size used for the detailed report.
	DefaultReportLimit = 100000
)

// SalesFlag selects which sales the sales-list endpoint returns.
type SalesFlag int

const (
	// FlagAll returns every sale changed since dateFrom.
	FlagAll SalesFlag = 0
	// FlagNew returns only sales created on dateFrom.
	FlagNew SalesFlag = 1
)

// SalesParams are the query parameters of the sales-list endpoint.
type SalesParams struct {
	DateFrom string
	DateTo   string
	Flag     SalesFlag
}

// ReportParams are the query parameters of the detailed report endpoint.
type ReportParams struct {
	DateFrom string
	DateTo   string
	Limit    int
	RRDID    int64
}

// StatisticsClient defines the statistics API operations.
type StatisticsClient interface {
	GetSales(ctx context.Context, params SalesParams) (*recordv1.SalesResult, error)
	GetReportDetail(ctx context.Context, params ReportParams) (*recordv1.Page, error)
	GetStocks(ctx context.Context, dateFrom string) (recordv1.Records, error)
}

// ReportDetailColumns is the field list of a detailed report row, in the
// order the endpoint returns it. Used as the header of empty exports.
var ReportDetailColumns = []string{
	"realizationreport_id", "date_from", "date_to", "create_dt", "currency_name",
	"suppliercontract_code", "rrd_id", "gi_id", "dlv_prc", "fix_tariff_date_from",
	"fix_tariff_date_to", "subject_name", "nm_id", "brand_name", "sa_name",
	"ts_name", "barcode", "doc_type_name", "quantity", "retail_price",
	"retail_amount", "sale_percent", "commission_percent", "office_name",
	"supplier_oper_name", "order_dt", "sale_dt", "rr_dt", "shk_id",
	"retail_price_withdisc_rub", "delivery_amount", "return_amount", "delivery_rub",
	"gi_box_type_name", "product_discount_for_report", "supplier_promo", "rid",
	"ppvz_spp_prc", "ppvz_kvw_prc_base", "ppvz_kvw_prc", "sup_rating_prc_up",
	"is_kgvp_v2", "ppvz_sales_commission", "ppvz_for_pay", "ppvz_reward",
	"acquiring_fee", "acquiring_percent", "payment_processing", "acquiring_bank",
	"ppvz_vw", "ppvz_vw_nds", "ppvz_office_name", "ppvz_office_id",
	"ppvz_supplier_id", "ppvz_supplier_name", "ppvz_inn", "declaration_number",
	"bonus_type_name", "sticker_id", "site_country", "srv_dbs", "penalty",
	"additional_payment", "rebill_logistic_cost", "rebill_logistic_org",
	"storage_fee", "deduction", "acceptance", "assembly_id", "kiz", "srid",
	"report_type", "is_legal_entity", "trbx_id",
}
