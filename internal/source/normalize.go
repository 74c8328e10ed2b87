package source

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cleared-dev/boardbrief/internal/model"
)

type boardsResponse struct {
	Data *struct {
		Boards []board `json:"boards"`
	} `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

type board struct {
	Name      string `json:"name"`
	ItemsPage struct {
		// Cursor is non-null when the board has more items than one page.
		Cursor *string `json:"cursor"`
		Items  []item  `json:"items"`
	} `json:"items_page"`
}

type item struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	ColumnValues []columnValue `json:"column_values"`
}

type columnValue struct {
	Text   *string `json:"text"`
	Column struct {
		Title string `json:"title"`
	} `json:"column"`
}

// Normalize converts a monday.com boards query response into a table with
// one row per item of the first board: "Item Name" plus one column per
// column title. An empty board yields an empty table.
func Normalize(payload []byte) (model.Table, error) {
	b, err := decodeBoard(payload)
	if err != nil {
		return model.Table{}, err
	}
	return b.table(), nil
}

func decodeBoard(payload []byte) (board, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return board{}, fmt.Errorf("%w: empty response from monday API", ErrFetch)
	}

	var resp boardsResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return board{}, fmt.Errorf("%w: decoding monday response: %w", ErrFetch, err)
	}
	if hasErrors(resp.Errors) {
		return board{}, fmt.Errorf("%w: monday API error: %s", ErrFetch, resp.Errors)
	}
	if resp.Data == nil || len(resp.Data.Boards) == 0 {
		return board{}, fmt.Errorf("%w: no boards returned, check board ID or permissions", ErrSchema)
	}
	return resp.Data.Boards[0], nil
}

// hasMore reports whether monday.com holds items beyond the returned page.
func (b board) hasMore() bool {
	return b.ItemsPage.Cursor != nil && *b.ItemsPage.Cursor != ""
}

func (b board) table() model.Table {
	var tb model.Builder
	for _, it := range b.ItemsPage.Items {
		fields := make([]model.Field, 0, len(it.ColumnValues)+1)
		fields = append(fields, model.Field{Column: model.ItemNameColumn, Text: it.Name})
		for _, cv := range it.ColumnValues {
			f := model.Field{Column: cv.Column.Title}
			if cv.Text == nil {
				f.Null = true
			} else {
				f.Text = *cv.Text
			}
			fields = append(fields, f)
		}
		tb.Add(fields...)
	}
	return tb.Table()
}

func hasErrors(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null")) && !bytes.Equal(raw, []byte("[]"))
}
