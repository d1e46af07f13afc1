// repositories/errors.go
package repositories

import "errors"

// ErrNotFound aranan kaydın bulunmadığını belirten repository sentinel'idir.
// Kayıt yokluğu bu katmanda olağan bir sonuçtur; çağıran errors.Is ile ayırt eder.
var ErrNotFound = errors.New("kayıt bulunamadı")
