package block

// Shape описывает геометрию блока
type Shape uint8

const (
	ShapeCube Shape = iota // Обычный куб
	ShapeX                 // Две скрещенные плоскости (цветы)
	ShapeFlat              // Одна плоскость (картинка на стене)
)

// String возвращает имя формы
func (s Shape) String() string {
	switch s {
	case ShapeCube:
		return "Cube"
	case ShapeX:
		return "X"
	case ShapeFlat:
		return "Flat"
	default:
		return "Unknown"
	}
}

// Metadata неизменяемые свойства типа блока
type Metadata struct {
	Gravitable  bool  // Падает, если под ним пусто
	Shape       Shape // Геометрия
	Transparent bool  // Сквозь блок видны соседние грани
	Intangible  bool  // Сквозь блок можно пройти
	Fluid       bool  // Жидкость
}

// defaultMetadata возвращается для типов без записи в таблице: непрозрачный куб
var defaultMetadata = Metadata{Shape: ShapeCube}

var registry = map[Type]Metadata{
	Void:      {Shape: ShapeCube, Transparent: true},
	Stone:     {Shape: ShapeCube},
	Wood:      {Shape: ShapeCube},
	Leaf:      {Shape: ShapeCube, Transparent: true},
	Cloud:     {Shape: ShapeCube},
	Gold:      {Shape: ShapeCube},
	RedFlower: {Shape: ShapeX, Transparent: true},
	Water:     {Shape: ShapeCube, Transparent: true, Fluid: true},
	Grass:     {Shape: ShapeCube},
	Image:     {Shape: ShapeFlat, Transparent: true},
	Planks:    {Shape: ShapeCube},
	Red:       {Shape: ShapeCube},
}

// Get возвращает метаданные для указанного типа
func Get(t Type) (Metadata, bool) {
	meta, exists := registry[t]
	return meta, exists
}

// MetadataFor возвращает метаданные типа или непрозрачный куб для неизвестных типов
func MetadataFor(t Type) Metadata {
	if meta, exists := registry[t]; exists {
		return meta
	}
	return defaultMetadata
}

// IsValidType проверяет, есть ли тип в таблице
func IsValidType(t Type) bool {
	_, exists := registry[t]
	return exists
}

// Type представляет тип блока
type Type uint8

// Константы типов блоков. Значения фиксированы: они попадают в снимки чанков.
const (
	Void      Type = iota // 0 - нет блока
	Stone                 // 1
	Wood                  // 2
	Leaf                  // 3
	Cloud                 // 4
	Gold                  // 5
	RedFlower             // 6
	Water                 // 7
	Grass                 // 8
	Image                 // 9
	Planks                // 10
	Red                   // 11
)

var typeNames = [...]string{
	Void:      "Void",
	Stone:     "Stone",
	Wood:      "Wood",
	Leaf:      "Leaf",
	Cloud:     "Cloud",
	Gold:      "Gold",
	RedFlower: "RedFlower",
	Water:     "Water",
	Grass:     "Grass",
	Image:     "Image",
	Planks:    "Planks",
	Red:       "Red",
}

// String возвращает имя типа
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}
