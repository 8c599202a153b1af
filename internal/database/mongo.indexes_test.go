// Package database - Test phân tích tag index trên model.
package database

import "testing"

func TestParseIndexTag_Unique(t *testing.T) {
	configs := parseIndexTag("unique")
	if len(configs) != 1 {
		t.Fatalf("Tag 'unique' phải cho 1 cấu hình, nhận được %d", len(configs))
	}
	if _, ok := configs[0]["unique"]; !ok {
		t.Error("Cấu hình phải chứa key 'unique'")
	}
}

func TestParseIndexTag_UniqueSparse(t *testing.T) {
	configs := parseIndexTag("unique,sparse")
	if len(configs) != 1 {
		t.Fatalf("Tag 'unique,sparse' phải cho 1 cấu hình, nhận được %d", len(configs))
	}
	if _, ok := configs[0]["unique"]; !ok {
		t.Error("Cấu hình phải chứa 'unique'")
	}
	if _, ok := configs[0]["sparse"]; !ok {
		t.Error("Cấu hình phải chứa 'sparse'")
	}
}

func TestParseIndexTag_CompoundGroup(t *testing.T) {
	configs := parseIndexTag("compound:user_date_platform")
	if len(configs) != 1 {
		t.Fatalf("Tag compound phải cho 1 cấu hình, nhận được %d", len(configs))
	}
	if configs[0]["compound"] != "user_date_platform" {
		t.Errorf("Tên nhóm compound phải là 'user_date_platform', nhận được %q", configs[0]["compound"])
	}
}

func TestParseIndexTag_MultipleConfigs(t *testing.T) {
	configs := parseIndexTag("single;compound:user_status")
	if len(configs) != 2 {
		t.Fatalf("Tag phân cách bởi ';' phải cho 2 cấu hình, nhận được %d", len(configs))
	}
	if _, ok := configs[0]["single"]; !ok {
		t.Error("Cấu hình đầu phải chứa 'single'")
	}
	if configs[1]["compound"] != "user_status" {
		t.Errorf("Cấu hình sau phải là compound:user_status, nhận được %v", configs[1])
	}
}

func TestParseOrder(t *testing.T) {
	if parseOrder("single") != 1 {
		t.Error("Tag không có order phải mặc định tăng dần (1)")
	}
	if parseOrder("single,order:-1") != -1 {
		t.Error("Tag order:-1 phải cho thứ tự giảm dần (-1)")
	}
}
