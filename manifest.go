package main

// IconSpec pairs an output path, relative to the output root, with the
// required square pixel size.
type IconSpec struct {
	Path string
	Size int
}

// iconManifest is the fixed set of outputs consumed by the iOS and web
// builds. Names and sizes must be reproduced exactly; order is the order
// files are generated and reported in.
var iconManifest = []IconSpec{
	// AppIcon.appiconset
	{"AppIcon.appiconset/icon-20@2x.png", 40},
	{"AppIcon.appiconset/icon-20@3x.png", 60},
	{"AppIcon.appiconset/icon-29@2x.png", 58},
	{"AppIcon.appiconset/icon-29@3x.png", 87},
	{"AppIcon.appiconset/icon-38@2x.png", 76},
	{"AppIcon.appiconset/icon-38@3x.png", 114},
	{"AppIcon.appiconset/icon-40@2x.png", 80},
	{"AppIcon.appiconset/icon-40@3x.png", 120},
	{"AppIcon.appiconset/icon-60@2x.png", 120},
	{"AppIcon.appiconset/icon-60@3x.png", 180},
	{"AppIcon.appiconset/icon-64@2x.png", 128},
	{"AppIcon.appiconset/icon-64@3x.png", 192},
	{"AppIcon.appiconset/icon-76@2x.png", 152},
	{"AppIcon.appiconset/icon-83.5@2x.png", 167},
	{"AppIcon.appiconset/icon-1024.png", 1024},
	// Web / PWA
	{"apple-touch-icon.png", 180},
	{"favicon-32x32.png", 32},
	{"favicon-16x16.png", 16},
}
