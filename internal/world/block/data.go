package block

import (
	"fmt"

	"github.com/annel0/blockverse/internal/vec"
)

// Data дополнительные данные блока. Имеют смысл только для формы Flat:
// направление, на которое смотрит картинка.
type Data struct {
	image    vec.Direction
	hasImage bool
}

// NoData пустые дополнительные данные
var NoData = Data{}

// ImageData возвращает данные картинки, обращённой в направлении d
func ImageData(d vec.Direction) Data {
	return Data{image: d, hasImage: true}
}

// Image возвращает направление картинки, если оно задано
func (d Data) Image() (vec.Direction, bool) {
	return d.image, d.hasImage
}

// IsNone проверяет, что данных нет
func (d Data) IsNone() bool {
	return !d.hasImage
}

// String возвращает "None" или "Image(dir)"
func (d Data) String() string {
	if !d.hasImage {
		return "None"
	}
	return fmt.Sprintf("Image(%s)", d.image)
}
