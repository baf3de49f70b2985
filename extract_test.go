package sheetimport

import (
	"reflect"
	"testing"
)

func TestResolveTopRow(t *testing.T) {
	tests := []struct {
		name     string
		explicit int
		rowSkip  SkipSet
		want     int
	}{
		{name: "no skip", explicit: 0, rowSkip: nil, want: 1},
		{name: "skip 1", explicit: 0, rowSkip: NewSkipSet(1), want: 2},
		{name: "skip 1,2", explicit: 0, rowSkip: NewSkipSet(1, 2), want: 3},
		{name: "sparse skip", explicit: 0, rowSkip: NewSkipSet(1, 3), want: 2},
		{name: "explicit wins", explicit: 5, rowSkip: NewSkipSet(1, 2), want: 5},
		{name: "explicit not re-validated", explicit: 2, rowSkip: NewSkipSet(2), want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveTopRow(tt.explicit, tt.rowSkip); got != tt.want {
				t.Errorf("ResolveTopRow() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExtractMapping(t *testing.T) {
	tests := []struct {
		name   string
		sheet  Sheet
		params MappingParams
		want   []KeyValue
	}{
		{
			name: "first key occurrence wins, empty keys dropped",
			sheet: NewGridSheet("", [][]any{
				{"Key", "Value"},
				{"a", 1},
				{"b", 2},
				{"a", 3},
				{"", 4},
			}),
			params: MappingParams{},
			want:   []KeyValue{{Key: "a", Value: 1}, {Key: "b", Value: 2}},
		},
		{
			name: "skipped row does not mark its key as seen",
			sheet: NewGridSheet("", [][]any{
				{"Key", "Value"},
				{"a", 1},
				{"a", 2},
			}),
			params: MappingParams{SkipRows: NewSkipSet(2)},
			want:   []KeyValue{{Key: "a", Value: 2}},
		},
		{
			name: "skipped row with unique valid key is excluded",
			sheet: NewGridSheet("", [][]any{
				{"Key", "Value"},
				{"a", 1},
				{"b", 2},
				{"c", 3},
			}),
			params: MappingParams{SkipRows: NewSkipSet(3)},
			want:   []KeyValue{{Key: "a", Value: 1}, {Key: "c", Value: 3}},
		},
		{
			name: "skip entry equal to top row has no effect on data rows",
			sheet: NewGridSheet("", [][]any{
				{"Key", "Value"},
				{"a", 1},
			}),
			params: MappingParams{TopRow: 1, SkipRows: NewSkipSet(1)},
			want:   []KeyValue{{Key: "a", Value: 1}},
		},
		{
			name: "key column may equal value column",
			sheet: NewGridSheet("", [][]any{
				{"Key"},
				{"a"},
				{"b"},
			}),
			params: MappingParams{KeyCol: 1, ValueCol: 1},
			want:   []KeyValue{{Key: "a", Value: "a"}, {Key: "b", Value: "b"}},
		},
		{
			name: "numeric zero key is empty",
			sheet: NewGridSheet("", [][]any{
				{"Key", "Value"},
				{0, 1},
				{"0", 2},
			}),
			params: MappingParams{},
			want:   []KeyValue{{Key: "0", Value: 2}},
		},
		{
			name: "top row beyond row count yields empty result",
			sheet: NewGridSheet("", [][]any{
				{"Key", "Value"},
				{"a", 1},
			}),
			params: MappingParams{TopRow: 10},
			want:   nil,
		},
		{
			name:   "empty sheet",
			sheet:  NewGridSheet("", nil),
			params: MappingParams{},
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractMapping(tt.sheet, tt.params)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractMapping() = %v, want %v", got, tt.want)
			}
			// Extraction must be idempotent over the same sheet
			again := ExtractMapping(tt.sheet, tt.params)
			if !reflect.DeepEqual(again, got) {
				t.Errorf("ExtractMapping() second call = %v, first call %v", again, got)
			}
		})
	}
}

func TestExtractRecords(t *testing.T) {
	tests := []struct {
		name   string
		sheet  Sheet
		params RecordParams
		want   []Record
	}{
		{
			name: "empty header drops field but not record",
			sheet: NewGridSheet("", [][]any{
				{"Name", "Age"},
				{"Alice", 30},
				{"Bob", 25},
				{"", 99},
			}),
			params: RecordParams{},
			want: []Record{
				{"Name": "Alice", "Age": 30},
				{"Name": "Bob", "Age": 25},
				{"Age": 99},
			},
		},
		{
			name: "skipped row yields an empty record",
			sheet: NewGridSheet("", [][]any{
				{"Name", "Age"},
				{"Alice", 30},
				{"Bob", 25},
			}),
			params: RecordParams{SkipRows: NewSkipSet(2)},
			want: []Record{
				{},
				{"Name": "Bob", "Age": 25},
			},
		},
		{
			name: "skipped column is dropped from every record",
			sheet: NewGridSheet("", [][]any{
				{"Name", "Age"},
				{"Alice", 30},
			}),
			params: RecordParams{SkipCols: NewSkipSet(2)},
			want: []Record{
				{"Name": "Alice"},
			},
		},
		{
			name: "duplicate header collapses to the first column",
			sheet: NewGridSheet("", [][]any{
				{"Name", "Name", "Age"},
				{"Alice", "Alicia", 30},
			}),
			params: RecordParams{},
			want: []Record{
				{"Name": "Alice", "Age": 30},
			},
		},
		{
			name: "resolved top row after skipped rows",
			sheet: NewGridSheet("", [][]any{
				{"junk"},
				{"Name", "Age"},
				{"Alice", 30},
			}),
			params: RecordParams{SkipRows: NewSkipSet(1)},
			want: []Record{
				{"Name": "Alice", "Age": 30},
			},
		},
		{
			name: "non-string headers become string field names",
			sheet: NewGridSheet("", [][]any{
				{2024, true},
				{"a", "b"},
			}),
			params: RecordParams{},
			want: []Record{
				{"2024": "a", "true": "b"},
			},
		},
		{
			name: "top row beyond row count yields no records",
			sheet: NewGridSheet("", [][]any{
				{"Name"},
				{"Alice"},
			}),
			params: RecordParams{TopRow: 5},
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractRecords(tt.sheet, tt.params)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractRecords() = %v, want %v", got, tt.want)
			}
			again := ExtractRecords(tt.sheet, tt.params)
			if !reflect.DeepEqual(again, got) {
				t.Errorf("ExtractRecords() second call = %v, first call %v", again, got)
			}
		})
	}
}

func TestExtractRecordsCount(t *testing.T) {
	// The record count only depends on the row range,
	// never on how many fields the filters rejected.
	sheet := NewGridSheet("", [][]any{
		{"Name", "Age"},
		{"Alice", 30},
		{"Bob", 25},
		{"Carol", 41},
	})
	for _, skip := range []SkipSet{nil, NewSkipSet(2), NewSkipSet(2, 3, 4)} {
		records := ExtractRecords(sheet, RecordParams{TopRow: 1, SkipRows: skip})
		if len(records) != 3 {
			t.Errorf("got %d records with SkipRows %v, want 3", len(records), skip)
		}
	}
}
