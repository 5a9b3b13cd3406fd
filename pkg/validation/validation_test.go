package validation

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupInput struct {
	Name                 string `json:"name" validate:"required,max=10"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation"`
}

var signupMessages = Messages{
	"email.email":      "Please enter a valid email address.",
	"password.eqfield": "Password and confirm password do not match.",
}

func TestValidate_Valid(t *testing.T) {
	v := New()
	err := v.Validate(signupInput{Name: "A", Email: "a@x.com", Password: "pass1234", PasswordConfirmation: "pass1234"}, signupMessages)
	assert.NoError(t, err)
}

func TestValidate_FieldErrorsUseJSONNamesAndMessages(t *testing.T) {
	v := New()
	err := v.Validate(signupInput{Name: "", Email: "nope", Password: "pass1234", PasswordConfirmation: "other123"}, signupMessages)

	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, []string{"The name field is required."}, errs["name"])
	assert.Equal(t, []string{"Please enter a valid email address."}, errs["email"])
	assert.Equal(t, []string{"Password and confirm password do not match."}, errs["password"])
	assert.False(t, errs.Has("password_confirmation"))
}

func TestValidate_DefaultMessages(t *testing.T) {
	v := New()
	err := v.Validate(signupInput{Name: "far too long a name", Email: "a@x.com", Password: "short", PasswordConfirmation: "short"}, nil)

	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, []string{"The name field must not be greater than 10 characters."}, errs["name"])
	assert.Equal(t, []string{"The password field must be at least 8 characters."}, errs["password"])
}

type uploadInput struct {
	Image *multipart.FileHeader `json:"image" validate:"-"`
}

func TestRegisterStructValidation(t *testing.T) {
	v := New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		in := sl.Current().Interface().(uploadInput)
		if _, tag, _ := CheckImage(in.Image, ImageRule{Mimes: []string{"png"}}); tag != "" {
			sl.ReportError(in.Image, "image", "Image", tag, "")
		}
	}, uploadInput{})

	err := v.Validate(uploadInput{}, Messages{"image.required": "Image is required."})

	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, []string{"Image is required."}, errs["image"])
}

func TestErrors_Error(t *testing.T) {
	errs := Errors{}
	errs.Add("b", "second")
	errs.Add("a", "first")
	assert.Equal(t, "validation failed: a: first; b: second", errs.Error())
}

func encodeImage(t *testing.T, format string) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	switch format {
	case "png":
		require.NoError(t, png.Encode(&buf, img))
	case "jpeg":
		require.NoError(t, jpeg.Encode(&buf, img, nil))
	case "gif":
		require.NoError(t, gif.Encode(&buf, img, nil))
	}
	return buf.Bytes()
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func TestCheckImage(t *testing.T) {
	rule := ImageRule{Mimes: []string{"jpeg", "png", "jpg"}, MaxKB: 2048}

	tests := []struct {
		name    string
		fh      *multipart.FileHeader
		wantTag string
		wantExt string
	}{
		{name: "missing", fh: nil, wantTag: "required"},
		{name: "png", fh: fileHeader(t, "cover.PNG", encodeImage(t, "png")), wantExt: "png"},
		{name: "jpeg", fh: fileHeader(t, "cover.jpeg", encodeImage(t, "jpeg")), wantExt: "jpeg"},
		{name: "no extension", fh: fileHeader(t, "cover", encodeImage(t, "jpeg")), wantExt: "jpg"},
		{name: "text", fh: fileHeader(t, "notes.png", []byte("just some text")), wantTag: "image"},
		{name: "gif", fh: fileHeader(t, "anim.gif", encodeImage(t, "gif")), wantTag: "mimes"},
		{name: "png named gif", fh: fileHeader(t, "cover.gif", encodeImage(t, "png")), wantTag: "mimes"},
		{name: "too large", fh: fileHeader(t, "big.png", append(encodeImage(t, "png"), make([]byte, 2049*1024)...)), wantTag: "max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, tag, err := CheckImage(tt.fh, rule)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTag, tag)
			if tt.wantTag == "" {
				assert.Equal(t, tt.wantExt, img.Extension)
			}
		})
	}
}
