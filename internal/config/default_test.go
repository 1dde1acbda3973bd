package config

import "testing"

func TestDefaultSyncConfig(t *testing.T) {
	c := DefaultSyncConfig()
	if !c.CheckRemote {
		t.Fatal("want CheckRemote=true")
	}
	if c.HTTPTimeout == 0 {
		t.Fatal("want non-zero HTTPTimeout")
	}
	if c.CopyBufferSize == 0 {
		t.Fatal("want non-zero CopyBufferSize")
	}
}

func TestDefaultOfflineConfig(t *testing.T) {
	c := DefaultOfflineConfig()
	if c.CheckRemote {
		t.Fatal("want CheckRemote=false")
	}
	if c.DumpURLTemplate == "" {
		t.Fatal("want DumpURLTemplate")
	}
}

func TestDumpURL(t *testing.T) {
	c := DefaultSyncConfig()
	want := "https://dumps.wikimedia.org/dewiki/latest/dewiki-latest-pages-articles.xml.bz2"
	if got := c.DumpURL("de"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
