// pkg/validation/validation.go
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError tek bir alanın ihlal ettiği kuralı taşır.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// Errors alan bazlı doğrulama hatalarının sıralı listesidir ve error
// arayüzünü uygular. Servisler doğrulama sonucunu olduğu gibi döndürür;
// handler errors.As ile yakalayıp listeyi yanıt gövdesine koyar.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "doğrulama hatası"
	}
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "doğrulama hatası: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Hatalarda Go alan adları yerine JSON alan adları görünsün.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate struct üzerindeki validate tag'lerini değerlendirir.
// Kural ihlallerinde Errors, beklenmeyen durumlarda düz error döner.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: message(fe),
		})
	}
	return out
}

// message kural için kullanıcıya dönük kısa bir açıklama üretir.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "bu alan zorunludur"
	case "min":
		return fmt.Sprintf("en az %s karakter olmalıdır", fe.Param())
	case "max":
		return fmt.Sprintf("en fazla %s karakter olabilir", fe.Param())
	case "gte":
		return fmt.Sprintf("%s veya daha büyük olmalıdır", fe.Param())
	case "lte":
		return fmt.Sprintf("%s veya daha küçük olmalıdır", fe.Param())
	default:
		return fmt.Sprintf("%s kuralını sağlamıyor", fe.Tag())
	}
}
