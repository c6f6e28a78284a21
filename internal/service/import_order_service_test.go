package service_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"warehouse/internal/model"
	"warehouse/internal/service"
	"warehouse/pkg/apperror"
)

func TestCreateComputesTotalsAndDefaults(t *testing.T) {
	env := newTestEnv(t)

	res := env.mustCreate(t)

	if res.OrderNumber != "PNK-20241201-0001" {
		t.Errorf("order number = %s", res.OrderNumber)
	}
	if res.TotalAmount != "2005.00" || res.FinalAmount != "2005.00" {
		t.Errorf("amounts = %s / %s, want 2005.00", res.TotalAmount, res.FinalAmount)
	}
	if res.Status != model.StatusDraft || res.StatusDisplay != "Nháp" {
		t.Errorf("status = %s (%s)", res.Status, res.StatusDisplay)
	}
	if res.FormTemplate != "01-VT" || res.OrderDate != "2024-12-01" || res.AttachedDocumentsCount != 0 {
		t.Errorf("defaults = %s %s %d", res.FormTemplate, res.OrderDate, res.AttachedDocumentsCount)
	}
	if len(res.Items) != 2 || res.Items[0].LineTotal != "1005.00" || res.Items[0].QuantityReceived != 0 {
		t.Fatalf("items = %+v", res.Items)
	}
	if res.Items[0].ProductName != "Monitor" || res.Items[0].Unit != "chiếc" {
		t.Errorf("product join = %+v", res.Items[0])
	}
	if res.WarehouseName != "Kho Hà Nội" || res.SupplierName != "Sao Mai Supplies" || res.CreatedByName != "Nguyễn Văn Kho" {
		t.Errorf("display names = %q %q %q", res.WarehouseName, res.SupplierName, res.CreatedByName)
	}
	if names := env.events.names(); len(names) != 1 || names[0] != service.EventImportOrderCreated {
		t.Errorf("events = %v", names)
	}
}

func TestCreateAllocatesSequentialNumbers(t *testing.T) {
	env := newTestEnv(t)

	first := env.mustCreate(t)
	second := env.mustCreate(t)

	if first.OrderNumber != "PNK-20241201-0001" || second.OrderNumber != "PNK-20241201-0002" {
		t.Errorf("numbers = %s, %s", first.OrderNumber, second.OrderNumber)
	}
}

func TestCreateWithDuplicateOrderNumberConflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := env.scenarioInput()
	in.OrderNumber = "PNK-MANUAL-0001"
	if _, err := env.orders.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := env.orders.Create(ctx, in)
	if !apperror.Is(err, apperror.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateContinuesAfterCallerSuppliedNumber(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := env.scenarioInput()
	in.OrderNumber = "PNK-20241201-0041"
	if _, err := env.orders.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}

	res := env.mustCreate(t)
	if res.OrderNumber != "PNK-20241201-0042" {
		t.Errorf("order number = %s", res.OrderNumber)
	}
}

func TestCreateNumbersPastPadWidth(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := env.scenarioInput()
	in.OrderNumber = "PNK-20241201-9999"
	if _, err := env.orders.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, want := range []string{"PNK-20241201-10000", "PNK-20241201-10001"} {
		if res := env.mustCreate(t); res.OrderNumber != want {
			t.Errorf("order number = %s, want %s", res.OrderNumber, want)
		}
	}
}

func TestCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := map[string]func(in *service.CreateImportOrderInput){
		"no items":         func(in *service.CreateImportOrderInput) { in.Items = nil },
		"zero quantity":    func(in *service.CreateImportOrderInput) { in.Items[0].QuantityOrdered = 0 },
		"negative price":   func(in *service.CreateImportOrderInput) { in.Items[1].UnitPrice = price("-1") },
		"missing price":    func(in *service.CreateImportOrderInput) { in.Items[1].UnitPrice = nil },
		"missing supplier": func(in *service.CreateImportOrderInput) { in.SupplierID = uuid.Nil },
		"sub-cent price":   func(in *service.CreateImportOrderInput) { in.Items[0].UnitPrice = price("0.335") },
		"price overflow":   func(in *service.CreateImportOrderInput) { in.Items[0].UnitPrice = price("10000000000000") },
		"total overflow": func(in *service.CreateImportOrderInput) {
			in.Items[0].QuantityOrdered = 1000000
			in.Items[0].UnitPrice = price("9999999999.99")
		},
		"delivery before order": func(in *service.CreateImportOrderInput) {
			order := service.NewDate(fixedNow)
			delivery := service.NewDate(fixedNow.AddDate(0, 0, -1))
			in.OrderDate, in.DeliveryDate = &order, &delivery
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := env.scenarioInput()
			mutate(&in)
			_, err := env.orders.Create(ctx, in)
			if !apperror.Is(err, apperror.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	var count int64
	env.db.Model(&model.ImportOrder{}).Count(&count)
	if count != 0 {
		t.Errorf("%d orders persisted by invalid input", count)
	}
}

func TestCreateUnknownReferencesNotFound(t *testing.T) {
	env := newTestEnv(t)

	in := env.scenarioInput()
	in.Items[1].ProductID = uuid.New()
	_, err := env.orders.Create(context.Background(), in)
	if !apperror.Is(err, apperror.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	in = env.scenarioInput()
	in.WarehouseID = uuid.New()
	_, err = env.orders.Create(context.Background(), in)
	if !apperror.Is(err, apperror.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateThenDeleteDraft(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res := env.mustCreate(t)
	id := uuid.MustParse(res.ID)

	if err := env.orders.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := env.orders.GetByID(ctx, id); !apperror.Is(err, apperror.KindNotFound) {
		t.Errorf("GetByID after delete: %v", err)
	}
	var items int64
	env.db.Model(&model.ImportOrderItem{}).Count(&items)
	if items != 0 {
		t.Errorf("%d items left behind", items)
	}
}

func TestDeletePendingFails(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id := uuid.MustParse(env.mustCreate(t).ID)
	if _, err := env.orders.UpdateStatus(ctx, id, model.StatusPending); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	err := env.orders.Delete(ctx, id)
	if !apperror.Is(err, apperror.KindBusinessRule) {
		t.Fatalf("expected business rule error, got %v", err)
	}
	if _, err := env.orders.GetByID(ctx, id); err != nil {
		t.Errorf("order vanished: %v", err)
	}
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	if err := env.orders.Delete(context.Background(), uuid.New()); !apperror.Is(err, apperror.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStatusLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := uuid.MustParse(env.mustCreate(t).ID)

	if _, err := env.orders.UpdateStatus(ctx, id, model.StatusReceived); !apperror.Is(err, apperror.KindBusinessRule) {
		t.Fatalf("draft -> received: expected business rule error, got %v", err)
	}

	res, err := env.orders.UpdateStatus(ctx, id, model.StatusPending)
	if err != nil {
		t.Fatalf("draft -> pending: %v", err)
	}
	if res.ReceivedDate != nil {
		t.Errorf("received_date set on pending: %v", *res.ReceivedDate)
	}

	res, err = env.orders.UpdateStatus(ctx, id, model.StatusReceived)
	if err != nil {
		t.Fatalf("pending -> received: %v", err)
	}
	if res.Status != model.StatusReceived || res.ReceivedDate == nil || *res.ReceivedDate != "2024-12-01" {
		t.Errorf("after receive: status=%s received_date=%v", res.Status, res.ReceivedDate)
	}
	if len(res.AllowedTransitions) != 0 || res.IsEditable {
		t.Errorf("received order should be terminal: %+v", res.AllowedTransitions)
	}

	if _, err := env.orders.UpdateStatus(ctx, id, model.StatusCancelled); !apperror.Is(err, apperror.KindBusinessRule) {
		t.Errorf("received -> cancelled: expected business rule error, got %v", err)
	}
}

func TestUpdateStatusUnknownValues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.orders.UpdateStatus(ctx, uuid.New(), model.StatusPending); !apperror.Is(err, apperror.KindNotFound) {
		t.Errorf("missing order: %v", err)
	}
	id := uuid.MustParse(env.mustCreate(t).ID)
	if _, err := env.orders.UpdateStatus(ctx, id, "archived"); !apperror.Is(err, apperror.KindValidation) {
		t.Errorf("unknown status: %v", err)
	}
}

func TestReceiveStampsPersonnel(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := uuid.MustParse(env.mustCreate(t).ID)

	if _, err := env.orders.Receive(ctx, id, service.ReceiveImportOrderInput{}); !apperror.Is(err, apperror.KindBusinessRule) {
		t.Fatalf("receive from draft: %v", err)
	}
	if _, err := env.orders.UpdateStatus(ctx, id, model.StatusPending); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	received := service.NewDate(fixedNow.AddDate(0, 0, 2))
	keeper, accountant := "Phạm Thủ Kho", "Lê Kế Toán"
	res, err := env.orders.Receive(ctx, id, service.ReceiveImportOrderInput{
		ReceivedDate:    &received,
		WarehouseKeeper: &keeper,
		Accountant:      &accountant,
	})
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if res.Status != model.StatusReceived || *res.ReceivedDate != "2024-12-03" {
		t.Errorf("status=%s received=%v", res.Status, *res.ReceivedDate)
	}
	if res.WarehouseKeeper != keeper || res.Accountant != accountant {
		t.Errorf("personnel = %q / %q", res.WarehouseKeeper, res.Accountant)
	}
}

func TestUpdateReplacesItemsAndRecomputesTotals(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created := env.mustCreate(t)
	id := uuid.MustParse(created.ID)

	notes := "re-quoted"
	items := []service.ImportOrderItemInput{
		{ProductID: env.fx.Products[1].ID, QuantityOrdered: 3, UnitPrice: price("12.34")},
	}
	res, err := env.orders.Update(ctx, id, service.UpdateImportOrderInput{Notes: &notes, Items: &items})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if res.TotalAmount != "37.02" || res.FinalAmount != "37.02" {
		t.Errorf("amounts = %s / %s, want 37.02", res.TotalAmount, res.FinalAmount)
	}
	if len(res.Items) != 1 || res.Items[0].ProductCode != "SP002" {
		t.Errorf("items = %+v", res.Items)
	}
	if res.Notes != notes || res.InvoiceNumber != "HD-0001" {
		t.Errorf("partial update touched wrong fields: notes=%q invoice=%q", res.Notes, res.InvoiceNumber)
	}
	if res.OrderNumber != created.OrderNumber {
		t.Errorf("order number changed: %s -> %s", created.OrderNumber, res.OrderNumber)
	}
}

func TestUpdateHeaderOnlyKeepsTotals(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := uuid.MustParse(env.mustCreate(t).ID)

	person := "Trần Giao Hàng"
	res, err := env.orders.Update(ctx, id, service.UpdateImportOrderInput{DeliveryPerson: &person})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if res.DeliveryPerson != person || res.TotalAmount != "2005.00" || len(res.Items) != 2 {
		t.Errorf("after header update: %+v", res)
	}
}

func TestCreateAcceptsTrailingZeroPrices(t *testing.T) {
	env := newTestEnv(t)
	in := env.scenarioInput()
	in.Items = in.Items[:1]
	in.Items[0].QuantityOrdered = 3
	in.Items[0].UnitPrice = price("0.340")

	res, err := env.orders.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.TotalAmount != "1.02" || res.Items[0].UnitPrice != "0.34" || res.Items[0].LineTotal != "1.02" {
		t.Errorf("total=%s unit=%s line=%s", res.TotalAmount, res.Items[0].UnitPrice, res.Items[0].LineTotal)
	}
}

func TestUpdateClearsOptionalDates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := env.scenarioInput()
	delivery := service.NewDate(fixedNow.AddDate(0, 0, 4))
	refDate := service.NewDate(fixedNow)
	in.DeliveryDate, in.ReferenceDocumentDate = &delivery, &refDate
	created, err := env.orders.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.DeliveryDate == nil || created.ReferenceDocumentDate == nil {
		t.Fatalf("dates not stored: %v %v", created.DeliveryDate, created.ReferenceDocumentDate)
	}
	id := uuid.MustParse(created.ID)

	notes := "kept"
	res, err := env.orders.Update(ctx, id, service.UpdateImportOrderInput{Notes: &notes})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if res.DeliveryDate == nil || *res.DeliveryDate != "2024-12-05" {
		t.Errorf("absent field changed delivery_date to %v", res.DeliveryDate)
	}

	var body service.UpdateImportOrderInput
	if err := json.Unmarshal([]byte(`{"delivery_date": null, "reference_document_date": null}`), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	res, err = env.orders.Update(ctx, id, body)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if res.DeliveryDate != nil || res.ReferenceDocumentDate != nil {
		t.Errorf("dates not cleared: %v %v", res.DeliveryDate, res.ReferenceDocumentDate)
	}
}

func TestUpdateRejectedOutsideEditableStatuses(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := uuid.MustParse(env.mustCreate(t).ID)

	for _, s := range []model.ImportOrderStatus{model.StatusPending, model.StatusPartial} {
		if _, err := env.orders.UpdateStatus(ctx, id, s); err != nil {
			t.Fatalf("UpdateStatus %s: %v", s, err)
		}
	}

	notes := "too late"
	_, err := env.orders.Update(ctx, id, service.UpdateImportOrderInput{Notes: &notes})
	if !apperror.Is(err, apperror.KindBusinessRule) {
		t.Fatalf("expected business rule error, got %v", err)
	}
}

func TestUpdateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := uuid.MustParse(env.mustCreate(t).ID)

	empty := []service.ImportOrderItemInput{}
	if _, err := env.orders.Update(ctx, id, service.UpdateImportOrderInput{Items: &empty}); !apperror.Is(err, apperror.KindValidation) {
		t.Errorf("empty items: %v", err)
	}

	before := service.NewDate(fixedNow.AddDate(0, 0, -3))
	if _, err := env.orders.Update(ctx, id, service.UpdateImportOrderInput{DeliveryDate: service.DateValue(before)}); !apperror.Is(err, apperror.KindValidation) {
		t.Errorf("delivery before order date: %v", err)
	}

	if _, err := env.orders.Update(ctx, uuid.New(), service.UpdateImportOrderInput{}); !apperror.Is(err, apperror.KindNotFound) {
		t.Errorf("missing order: %v", err)
	}
}

func TestListFiltersAndPaginates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		env.mustCreate(t)
	}

	rows, meta, err := env.orders.List(ctx, service.ListImportOrdersQuery{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 2 || meta.Total != 3 || meta.TotalPages != 2 || !meta.HasNext || meta.HasPrev {
		t.Errorf("rows=%d meta=%+v", len(rows), meta)
	}
	if rows[0].OrderNumber != "PNK-20241201-0003" {
		t.Errorf("first row = %s, want newest", rows[0].OrderNumber)
	}
	if rows[0].WarehouseName == "" || rows[0].Items != nil {
		t.Errorf("list row = %+v", rows[0])
	}

	_, meta, err = env.orders.List(ctx, service.ListImportOrdersQuery{Search: "SAO MAI", Status: "draft"})
	if err != nil {
		t.Fatalf("List search: %v", err)
	}
	if meta.Total != 3 || meta.Limit != 20 || meta.Page != 1 {
		t.Errorf("search meta = %+v", meta)
	}

	_, meta, err = env.orders.List(ctx, service.ListImportOrdersQuery{Search: "nothing-like-this"})
	if err != nil {
		t.Fatalf("List search: %v", err)
	}
	if meta.Total != 0 {
		t.Errorf("unmatched search total = %d", meta.Total)
	}
}

func TestListRejectsMalformedFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, q := range []service.ListImportOrdersQuery{
		{WarehouseID: "not-a-uuid"},
		{Status: "archived"},
		{OrderDateFrom: "01/12/2024"},
	} {
		if _, _, err := env.orders.List(ctx, q); !apperror.Is(err, apperror.KindValidation) {
			t.Errorf("%+v: expected validation error, got %v", q, err)
		}
	}
}

func TestListLimitIsCapped(t *testing.T) {
	env := newTestEnv(t)
	_, meta, err := env.orders.List(context.Background(), service.ListImportOrdersQuery{Limit: 5000})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if meta.Limit != 100 {
		t.Errorf("limit = %d, want 100", meta.Limit)
	}
}

func TestMutationsAreAudited(t *testing.T) {
	env := newTestEnv(t)
	ctx := service.WithActor(context.Background(), env.fx.User.ID)

	id := uuid.MustParse(env.mustCreate(t).ID)
	notes := "n"
	if _, err := env.orders.Update(ctx, id, service.UpdateImportOrderInput{Notes: &notes}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, err := env.orders.UpdateStatus(ctx, id, model.StatusCancelled); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	logs, meta, err := env.audit.GetAuditLogs(ctx, service.AuditLogQuery{EntityID: id.String()})
	if err != nil {
		t.Fatalf("GetAuditLogs: %v", err)
	}
	if meta.Total != 3 {
		t.Fatalf("audit entries = %d, want 3", meta.Total)
	}
	actions := map[string]bool{}
	for _, l := range logs {
		actions[l.Action] = true
		if l.Username != "thukho" {
			t.Errorf("%s recorded by %q", l.Action, l.Username)
		}
	}
	for _, a := range []string{model.ActionCreateImportOrder, model.ActionUpdateImportOrder, model.ActionChangeImportOrderStatus} {
		if !actions[a] {
			t.Errorf("missing audit action %s", a)
		}
	}

	names := env.events.names()
	if len(names) != 3 || names[2] != service.EventImportOrderStatusChanged {
		t.Errorf("events = %v", names)
	}
}

func TestUnknownActorIsAuditedWithoutUserID(t *testing.T) {
	env := newTestEnv(t)
	stranger := uuid.New()
	ctx := service.WithActor(context.Background(), stranger)

	id := uuid.MustParse(env.mustCreate(t).ID)
	notes := "gateway user"
	if _, err := env.orders.Update(ctx, id, service.UpdateImportOrderInput{Notes: &notes}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, err := env.orders.UpdateStatus(ctx, id, model.StatusPending); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if _, err := env.orders.Receive(ctx, id, service.ReceiveImportOrderInput{}); err != nil {
		t.Fatalf("Receive: %v", err)
	}

	draft := uuid.MustParse(env.mustCreate(t).ID)
	if err := env.orders.Delete(ctx, draft); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	for _, entity := range []uuid.UUID{id, draft} {
		logs, _, err := env.audit.GetAuditLogs(context.Background(), service.AuditLogQuery{EntityID: entity.String()})
		if err != nil {
			t.Fatalf("GetAuditLogs: %v", err)
		}
		for _, l := range logs {
			if l.Action == model.ActionCreateImportOrder {
				continue
			}
			if l.UserID != "" || l.Username != "System" {
				t.Errorf("%s recorded user %q/%q", l.Action, l.UserID, l.Username)
			}
			if !strings.Contains(l.Details, stranger.String()) {
				t.Errorf("%s details %s do not carry the actor", l.Action, l.Details)
			}
		}
	}
}

func TestNextOrderNumberPreview(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreate(t)

	if got := env.orders.NextOrderNumber(context.Background(), ""); got != "PNK-20241201-0002" {
		t.Errorf("next = %s", got)
	}
}
