package handler

import (
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supportedLanguages = []language.Tag{language.English, language.Vietnamese}

var messages = map[string]struct{ en, vi string }{
	"internal":        {"internal server error", "lỗi máy chủ nội bộ"},
	"request.invalid": {"invalid request", "yêu cầu không hợp lệ"},

	"order.not_found":        {"order not found", "không tìm thấy đơn hàng"},
	"order_item.not_found":   {"order item not found", "không tìm thấy món trong đơn"},
	"menu_item.not_found":    {"menu item not found", "không tìm thấy món trong thực đơn"},
	"option.not_found":       {"option not found", "không tìm thấy tùy chọn"},
	"order.finished":         {"order is already completed or cancelled", "đơn hàng đã hoàn tất hoặc đã hủy"},
	"order.not_draft":        {"order is not a draft", "đơn hàng không ở trạng thái nháp"},
	"order.not_serving":      {"order is not being served", "đơn hàng không ở trạng thái phục vụ"},
	"order_item.finished":    {"order item is already finished", "món đã hoàn tất"},
	"order_item.invalid_transition": {
		"order item cannot move to this status", "món không thể chuyển sang trạng thái này",
	},
	"order.invalid_type":           {"invalid order type", "loại đơn hàng không hợp lệ"},
	"order.table_required":         {"dine-in order requires a table", "đơn ăn tại chỗ cần có bàn"},
	"order.table_not_allowed":      {"table is not allowed for this order", "đơn hàng này không được gán bàn"},
	"order.no_items":               {"order has no items", "đơn hàng không có món"},
	"order.reason_required":        {"reason is required", "cần nhập lý do"},
	"order_item.invalid_quantity":  {"quantity must be positive", "số lượng phải lớn hơn 0"},
	"order_item.invalid_status":    {"unknown item status", "trạng thái món không hợp lệ"},
	"menu_item.out_of_stock":       {"menu item is out of stock", "món đã hết"},
	"option.unavailable":           {"option is unavailable", "tùy chọn không còn phục vụ"},
	"option.invalid_selection":     {"invalid option selection", "lựa chọn tùy chọn không hợp lệ"},
	"auth.missing_actor":           {"employee is not identified", "chưa xác định nhân viên"},
	"table.occupied":               {"table is occupied", "bàn đang có khách"},
	"order.concurrent_modification": {
		"order was modified concurrently, reload and retry", "đơn hàng vừa được thay đổi, hãy tải lại và thử lại",
	},
	"order.duplicate_code":           {"order code is already taken", "mã đơn hàng đã tồn tại"},
	"order.code_generation_conflict": {"could not allocate an order code", "không thể cấp mã đơn hàng"},
	"storage.failure":                {"storage is unavailable", "kho dữ liệu không khả dụng"},
}

type localizer struct {
	matcher language.Matcher
	catalog catalog.Catalog
}

func newLocalizer() *localizer {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for code, m := range messages {
		_ = b.SetString(language.English, code, m.en)
		_ = b.SetString(language.Vietnamese, code, m.vi)
	}
	return &localizer{
		matcher: language.NewMatcher(supportedLanguages),
		catalog: b,
	}
}

// Message renders code in the best language of the request's Accept-Language.
func (l *localizer) Message(r *http.Request, code string) string {
	tags, _, _ := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	_, idx, _ := l.matcher.Match(tags...)
	p := message.NewPrinter(supportedLanguages[idx], message.Catalog(l.catalog))
	return p.Sprintf(code)
}
