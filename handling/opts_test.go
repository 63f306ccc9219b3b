package handling

import (
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/vivekrai1999/shopspy/table"
)

func request(t *testing.T, query string) *TableOptions {
	t.Helper()
	r := httptest.NewRequest("GET", "/products/abc?"+query, nil)
	opts, err := ParseTableOptions(r)
	if err != nil {
		t.Fatalf("ParseTableOptions(%q): %v", query, err)
	}
	return opts
}

func requestErr(t *testing.T, query string) error {
	t.Helper()
	r := httptest.NewRequest("GET", "/products/abc?"+query, nil)
	_, err := ParseTableOptions(r)
	if err == nil {
		t.Fatalf("ParseTableOptions(%q) succeeded, want error", query)
	}
	return err
}

func TestParseFilters(t *testing.T) {
	opts := request(t, "filter.vendor=acme&filter.title=lamp&page=2")
	want := map[string]string{"vendor": "acme", "title": "lamp"}
	if !reflect.DeepEqual(opts.Filters, want) {
		t.Errorf("filters = %v, want %v", opts.Filters, want)
	}
	if opts.Page != 2 {
		t.Errorf("page = %d, want 2", opts.Page)
	}
}

func TestParseFilterWithoutColumn(t *testing.T) {
	requestErr(t, "filter.=oops")
}

func TestParseSort(t *testing.T) {
	cases := []struct {
		query  string
		column string
		dir    table.SortDirection
	}{
		{"sort=title", "title", table.SortAsc},
		{"sort=title:asc", "title", table.SortAsc},
		{"sort=price:desc", "price", table.SortDesc},
		{"sort=price:DESC", "price", table.SortDesc},
		{"sort=title:none", "title", table.SortNone},
	}
	for _, c := range cases {
		opts := request(t, c.query)
		if opts.SortColumn != c.column || opts.SortDir != c.dir {
			t.Errorf("%q: sort = %q/%v, want %q/%v", c.query, opts.SortColumn, opts.SortDir, c.column, c.dir)
		}
	}
}

func TestParseSortErrors(t *testing.T) {
	requestErr(t, "sort=price:sideways")
	requestErr(t, "sort=:desc")
}

func TestParsePageErrors(t *testing.T) {
	requestErr(t, "page=0")
	requestErr(t, "page=-3")
	requestErr(t, "page=two")
}

func TestParsePageSize(t *testing.T) {
	opts := request(t, "page_size=50")
	if opts.PageSize != 50 {
		t.Errorf("page_size = %d, want 50", opts.PageSize)
	}

	requestErr(t, "page_size=0")
	requestErr(t, "page_size=251")
	requestErr(t, "page_size=lots")
}

func TestParseColumnLists(t *testing.T) {
	opts := request(t, "hide=sku,tags&show=handle&pin_left=image,%20title&pin_right=price")
	if !reflect.DeepEqual(opts.Hide, []string{"sku", "tags"}) {
		t.Errorf("hide = %v", opts.Hide)
	}
	if !reflect.DeepEqual(opts.Show, []string{"handle"}) {
		t.Errorf("show = %v", opts.Show)
	}
	if !reflect.DeepEqual(opts.PinLeft, []string{"image", "title"}) {
		t.Errorf("pin_left = %v", opts.PinLeft)
	}
	if !reflect.DeepEqual(opts.PinRight, []string{"price"}) {
		t.Errorf("pin_right = %v", opts.PinRight)
	}
}

func TestParseEmptyQuery(t *testing.T) {
	opts := request(t, "")
	if len(opts.Filters) != 0 || opts.SortColumn != "" || opts.Page != 0 {
		t.Errorf("zero query produced %+v", opts)
	}
	if opts.Hide != nil || opts.Show != nil || opts.PinLeft != nil || opts.PinRight != nil {
		t.Errorf("zero query produced column lists %+v", opts)
	}
}

func TestParseIDList(t *testing.T) {
	r := httptest.NewRequest("GET", "/export/abc/csv?ids=1,%202,3", nil)
	ids, err := ParseIDList(r)
	if err != nil {
		t.Fatalf("ParseIDList: %v", err)
	}
	if !reflect.DeepEqual(ids, []int64{1, 2, 3}) {
		t.Errorf("ids = %v", ids)
	}

	r = httptest.NewRequest("GET", "/export/abc/csv", nil)
	ids, err = ParseIDList(r)
	if err != nil || ids != nil {
		t.Errorf("absent ids = %v, %v; want nil, nil", ids, err)
	}

	r = httptest.NewRequest("GET", "/export/abc/csv?ids=1,x", nil)
	if _, err := ParseIDList(r); err == nil {
		t.Error("malformed ids parsed without error")
	}
}
