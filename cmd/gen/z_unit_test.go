package main

import "testing"

// 輸出路徑解析：-output 是目的檔路徑，不是目錄。
func TestResolveOutputs(t *testing.T) {
	cases := []struct {
		name       string
		output     string
		history    bool
		wantHist   string
		wantRecent string
	}{
		{"defaults", "", true, "crash_history.json", "recent_history.json"},
		{"history to named file", "foo.json", true, "foo.json", "recent_history.json"},
		{"recent only to named file", "/tmp/myfix.json", false, "crash_history.json", "/tmp/myfix.json"},
	}
	for _, tc := range cases {
		h, r := resolveOutputs(tc.output, tc.history)
		if h != tc.wantHist || r != tc.wantRecent {
			t.Errorf("%s: got (%q,%q), want (%q,%q)", tc.name, h, r, tc.wantHist, tc.wantRecent)
		}
	}
}
