// Package upload - Test sinh tên file và validate file upload.
package upload

import (
	"mime/multipart"
	"regexp"
	"strings"
	"testing"
)

func TestGenerateFilename_Format(t *testing.T) {
	name := GenerateFilename("photo.PNG")
	matched, err := regexp.MatchString(`^\d+-\d{9}\.png$`, name)
	if err != nil {
		t.Fatal(err)
	}
	if !matched {
		t.Errorf("tên file '%s' không khớp format <unixmilli>-<9 số><ext>", name)
	}
}

func TestGenerateFilename_Unique(t *testing.T) {
	a := GenerateFilename("a.jpg")
	b := GenerateFilename("a.jpg")
	if a == b {
		t.Errorf("hai lần sinh tên liên tiếp không được trùng: %s", a)
	}
}

func TestSaverValidate_RejectsOversize(t *testing.T) {
	s := NewSaver("uploads", 100)
	fh := &multipart.FileHeader{Filename: "big.jpg", Size: 101}
	if err := s.validate(fh); err == nil {
		t.Error("file vượt MaxBytes phải bị từ chối")
	}
}

func TestSaverValidate_RejectsUnknownExtension(t *testing.T) {
	s := NewSaver("uploads", 1<<20)
	fh := &multipart.FileHeader{Filename: "script.exe", Size: 10}
	err := s.validate(fh)
	if err == nil {
		t.Fatal("extension .exe phải bị từ chối")
	}
	if !strings.Contains(err.Error(), ".exe") {
		t.Errorf("message lỗi phải nêu extension, nhận: %v", err)
	}
}

func TestSaverValidate_AcceptsAllowed(t *testing.T) {
	s := NewSaver("uploads", 1<<20)
	for _, name := range []string{"a.jpg", "b.JPEG", "c.png", "d.webp", "e.pdf", "f.svg"} {
		fh := &multipart.FileHeader{Filename: name, Size: 10}
		if err := s.validate(fh); err != nil {
			t.Errorf("file '%s' phải được chấp nhận, nhận lỗi: %v", name, err)
		}
	}
}
