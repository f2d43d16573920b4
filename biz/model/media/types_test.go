package media

import "testing"

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input string
		want  Platform
		ok    bool
	}{
		{"", "", true},
		{"local", PlatformLocal, true},
		{"s3", PlatformS3, true},
		{"cloud", PlatformS3, true},
		{"blob", PlatformS3, true},
		{"ftp", "", false},
		{"LOCAL", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePlatform(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePlatform(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPlatformOther(t *testing.T) {
	if PlatformLocal.Other() != PlatformS3 {
		t.Error("Expected local.Other() to be s3")
	}
	if PlatformS3.Other() != PlatformLocal {
		t.Error("Expected s3.Other() to be local")
	}
}

func TestParseAssetType(t *testing.T) {
	valid := []string{
		"site_logo", "favicon", "product_main", "product_alt",
		"product_variant", "brand_logo", "user_avatar", "banner",
		"mini_banner", "page_image", "site_asset",
	}
	for _, s := range valid {
		if _, ok := ParseAssetType(s); !ok {
			t.Errorf("Expected %q to parse", s)
		}
	}
	for _, s := range []string{"", "logo", "product", "Banner"} {
		if _, ok := ParseAssetType(s); ok {
			t.Errorf("Expected %q to be rejected", s)
		}
	}
}

func TestAssetTypeDir(t *testing.T) {
	tests := map[AssetType]string{
		AssetSiteLogo:       "logos",
		AssetFavicon:        "favicons",
		AssetProductMain:    "products",
		AssetProductAlt:     "products",
		AssetProductVariant: "products",
		AssetBrandLogo:      "brands",
		AssetUserAvatar:     "users",
		AssetBanner:         "banners",
		AssetMiniBanner:     "minibanners",
		AssetPageImage:      "pages",
		AssetSiteAsset:      "site",
	}
	for typ, dir := range tests {
		if got := typ.Dir(); got != dir {
			t.Errorf("%s.Dir() = %q, want %q", typ, got, dir)
		}
	}
}

func TestAssetTypeProcessed(t *testing.T) {
	processed := map[AssetType]bool{
		AssetProductMain:    true,
		AssetProductAlt:     true,
		AssetProductVariant: true,
		AssetSiteLogo:       false,
		AssetBrandLogo:      false,
		AssetBanner:         false,
	}
	for typ, want := range processed {
		if got := typ.Processed(); got != want {
			t.Errorf("%s.Processed() = %v, want %v", typ, got, want)
		}
	}
}
