package summary

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	recordv1 "github.com/muhammadchandra19/wb-report/internal/domain/record/v1"
	"github.com/muhammadchandra19/wb-report/pkg/util"
	"github.com/shopspring/decimal"
)

// TopArticles is how many articles the summary lists.
const TopArticles = 5

const (
	dateField     = "date"
	nmIDField     = "nmId"
	quantityField = "quantity"
	priceField    = "totalPrice"
)

// Article aggregates the sales of one nmId.
type Article struct {
	NmID     int64
	Quantity int64
	Revenue  decimal.Decimal
}

// Summary aggregates a set of sales records.
type Summary struct {
	Count    int
	Quantity int64
	Revenue  decimal.Decimal
	From     string
	To       string
	Top      []Article
}

// Summarize aggregates sales records. A record without quantity counts as
// one unit; a record without totalPrice adds no revenue.
func Summarize(records recordv1.Records) Summary {
	s := Summary{Count: len(records), Revenue: decimal.Zero}
	articles := map[int64]*Article{}

	for _, rec := range records {
		qty, ok := rec.Int(quantityField)
		if !ok {
			qty = 1
		}
		price := revenue(rec)

		s.Quantity += qty
		s.Revenue = s.Revenue.Add(price)

		if d, ok := rec.String(dateField); ok && d != "" {
			d = util.DatePart(d)
			if s.From == "" || d < s.From {
				s.From = d
			}
			if d > s.To {
				s.To = d
			}
		}

		nmID, ok := rec.Int(nmIDField)
		if !ok {
			continue
		}
		a, ok := articles[nmID]
		if !ok {
			a = &Article{NmID: nmID, Revenue: decimal.Zero}
			articles[nmID] = a
		}
		a.Quantity += qty
		a.Revenue = a.Revenue.Add(price)
	}

	top := make([]Article, 0, len(articles))
	for _, a := range articles {
		top = append(top, *a)
	}
	slices.SortFunc(top, func(a, b Article) int {
		if c := cmp.Compare(b.Quantity, a.Quantity); c != 0 {
			return c
		}
		if c := b.Revenue.Cmp(a.Revenue); c != 0 {
			return c
		}
		return cmp.Compare(a.NmID, b.NmID)
	})
	if len(top) > TopArticles {
		top = top[:TopArticles]
	}
	s.Top = top
	return s
}

func revenue(rec *recordv1.Record) decimal.Decimal {
	n, ok := rec.Number(priceField)
	if !ok {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// PrintSalesSummary writes a human readable summary of records to w.
func PrintSalesSummary(w io.Writer, records recordv1.Records) error {
	s := Summarize(records)

	if _, err := fmt.Fprintf(w, "Sales summary\nRecords: %d\n", s.Count); err != nil {
		return err
	}
	if s.Count == 0 {
		_, err := fmt.Fprintln(w, "no sales in range")
		return err
	}

	if _, err := fmt.Fprintf(w, "Quantity: %d\nRevenue: %s\n", s.Quantity, s.Revenue.StringFixed(2)); err != nil {
		return err
	}
	if s.From != "" {
		if _, err := fmt.Fprintf(w, "Period: %s .. %s\n", s.From, s.To); err != nil {
			return err
		}
	}
	if len(s.Top) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w, "\nTop %d articles by quantity:\n", len(s.Top)); err != nil {
		return err
	}
	for i, a := range s.Top {
		if _, err := fmt.Fprintf(w, "%d. nmId %d: %d pcs, %s\n", i+1, a.NmID, a.Quantity, a.Revenue.StringFixed(2)); err != nil {
			return err
		}
	}
	return nil
}
