// Package snapshot кодирует чанки и их сетки в компактный бинарный вид
// для передачи внешнему слою отображения.
//
// Формат чанка до сжатия (little endian):
//
//	magic "BVCK" | version u8 | x i16 | z i16 | 16384 x type u8 |
//	count u16 | count x (index u16, image direction u8)
//
// Формат сетки: magic "BVMS" | version u8 | x i16 | z i16 |
// count u32 | count x (index u16, faces u8).
//
// Оба формата сжимаются zstd.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/annel0/blockverse/internal/vec"
	"github.com/annel0/blockverse/internal/world"
	"github.com/annel0/blockverse/internal/world/block"
	"github.com/klauspost/compress/zstd"
)

// Version текущая версия формата
const Version = 1

var (
	chunkMagic = [4]byte{'B', 'V', 'C', 'K'}
	meshMagic  = [4]byte{'B', 'V', 'M', 'S'}
)

// ErrCorruptSnapshot возвращается для данных, которые не удалось разобрать
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

// Codec сжимает и разжимает снимки. Безопасен для конкурентного использования.
type Codec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewCodec создаёт кодек с заданным уровнем сжатия
func NewCodec(level zstd.EncoderLevel) (*Codec, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	return &Codec{enc: enc, dec: dec}, nil
}

// Close освобождает ресурсы кодека
func (c *Codec) Close() {
	_ = c.enc.Close()
	c.dec.Close()
}

var (
	defaultCodec     *Codec
	defaultCodecErr  error
	defaultCodecOnce sync.Once
)

func getDefault() (*Codec, error) {
	defaultCodecOnce.Do(func() {
		defaultCodec, defaultCodecErr = NewCodec(zstd.SpeedDefault)
	})
	return defaultCodec, defaultCodecErr
}

// EncodeChunk кодирует чанк кодеком по умолчанию
func EncodeChunk(c *world.Chunk) ([]byte, error) {
	codec, err := getDefault()
	if err != nil {
		return nil, err
	}
	return codec.EncodeChunk(c), nil
}

// DecodeChunk декодирует чанк кодеком по умолчанию
func DecodeChunk(data []byte) (*world.Chunk, error) {
	codec, err := getDefault()
	if err != nil {
		return nil, err
	}
	return codec.DecodeChunk(data)
}

// EncodeMesh кодирует сетку кодеком по умолчанию
func EncodeMesh(m *world.ChunkMesh) ([]byte, error) {
	codec, err := getDefault()
	if err != nil {
		return nil, err
	}
	return codec.EncodeMesh(m), nil
}

// DecodeMesh декодирует сетку кодеком по умолчанию
func DecodeMesh(data []byte) (*world.ChunkMesh, error) {
	codec, err := getDefault()
	if err != nil {
		return nil, err
	}
	return codec.DecodeMesh(data)
}

type header struct {
	Magic   [4]byte
	Version uint8
	X       int16
	Z       int16
}

type imageEntry struct {
	Index uint16
	Dir   uint8
}

type meshEntry struct {
	Index uint16
	Faces uint8
}

// EncodeChunk кодирует содержимое чанка
func (c *Codec) EncodeChunk(chunk *world.Chunk) []byte {
	data := chunk.Blocks()

	var buf bytes.Buffer
	buf.Grow(vec.ChunkVolume + 64)

	write(&buf, header{Magic: chunkMagic, Version: Version, X: data.Pos.X, Z: data.Pos.Y})
	for _, t := range data.Types {
		buf.WriteByte(byte(t))
	}

	entries := make([]imageEntry, 0, len(data.Data))
	for index, extra := range data.Data {
		if dir, ok := extra.Image(); ok {
			entries = append(entries, imageEntry{Index: index, Dir: uint8(dir)})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Index < entries[j].Index })

	write(&buf, uint16(len(entries)))
	write(&buf, entries)

	return c.enc.EncodeAll(buf.Bytes(), nil)
}

// DecodeChunk восстанавливает чанк из снимка
func (c *Codec) DecodeChunk(compressed []byte) (*world.Chunk, error) {
	raw, err := c.dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	r := bytes.NewReader(raw)

	h, err := readHeader(r, chunkMagic)
	if err != nil {
		return nil, err
	}

	data := &world.ChunkData{
		Pos:  world.ChunkPos{X: h.X, Y: h.Z},
		Data: make(map[uint16]block.Data),
	}

	var types [vec.ChunkVolume]byte
	if err := binary.Read(r, binary.LittleEndian, &types); err != nil {
		return nil, fmt.Errorf("%w: block types: %v", ErrCorruptSnapshot, err)
	}
	for i, t := range types {
		if !block.IsValidType(block.Type(t)) {
			return nil, fmt.Errorf("%w: unknown block type %d at index %d", ErrCorruptSnapshot, t, i)
		}
		data.Types[i] = block.Type(t)
	}

	var count uint16
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: image count: %v", ErrCorruptSnapshot, err)
	}
	entries := make([]imageEntry, count)
	if err := binary.Read(r, binary.LittleEndian, entries); err != nil {
		return nil, fmt.Errorf("%w: image entries: %v", ErrCorruptSnapshot, err)
	}
	for _, e := range entries {
		dir := vec.Direction(e.Dir)
		if int(e.Index) >= vec.ChunkVolume || !dir.Valid() {
			return nil, fmt.Errorf("%w: bad image entry %d/%d", ErrCorruptSnapshot, e.Index, e.Dir)
		}
		data.Data[e.Index] = block.ImageData(dir)
	}

	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorruptSnapshot, r.Len())
	}
	return world.NewChunkFromBlocks(data), nil
}

// EncodeMesh кодирует сетку чанка. Сетка выводится из чанков,
// поэтому снимок нужен только для диагностики.
func (c *Codec) EncodeMesh(mesh *world.ChunkMesh) []byte {
	pos := mesh.Pos()
	entries := make([]meshEntry, 0, mesh.Len())
	mesh.Each(func(p world.WorldPos, faces vec.Directions) {
		entries = append(entries, meshEntry{Index: p.LocalInChunk().Index(), Faces: uint8(faces)})
	})

	var buf bytes.Buffer
	write(&buf, header{Magic: meshMagic, Version: Version, X: pos.X, Z: pos.Y})
	write(&buf, uint32(len(entries)))
	write(&buf, entries)

	return c.enc.EncodeAll(buf.Bytes(), nil)
}

// DecodeMesh восстанавливает сетку из снимка
func (c *Codec) DecodeMesh(compressed []byte) (*world.ChunkMesh, error) {
	raw, err := c.dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	r := bytes.NewReader(raw)

	h, err := readHeader(r, meshMagic)
	if err != nil {
		return nil, err
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: mesh count: %v", ErrCorruptSnapshot, err)
	}
	if count > vec.ChunkVolume {
		return nil, fmt.Errorf("%w: mesh count %d", ErrCorruptSnapshot, count)
	}
	entries := make([]meshEntry, count)
	if err := binary.Read(r, binary.LittleEndian, entries); err != nil {
		return nil, fmt.Errorf("%w: mesh entries: %v", ErrCorruptSnapshot, err)
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorruptSnapshot, r.Len())
	}

	pos := world.ChunkPos{X: h.X, Y: h.Z}
	mesh := world.NewChunkMesh(pos)
	for _, e := range entries {
		faces := vec.Directions(e.Faces)
		if int(e.Index) >= vec.ChunkVolume || faces&^vec.AllFaces != 0 {
			return nil, fmt.Errorf("%w: bad mesh entry %d/%d", ErrCorruptSnapshot, e.Index, e.Faces)
		}
		mesh.Insert(vec.LocalFromIndex(e.Index).ToWorld(pos), faces)
	}
	return mesh, nil
}

func readHeader(r *bytes.Reader, magic [4]byte) (header, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return h, fmt.Errorf("%w: header: %v", ErrCorruptSnapshot, err)
	}
	if h.Magic != magic {
		return h, fmt.Errorf("%w: bad magic %q", ErrCorruptSnapshot, h.Magic[:])
	}
	if h.Version != Version {
		return h, fmt.Errorf("%w: unsupported version %d", ErrCorruptSnapshot, h.Version)
	}
	return h, nil
}

// write пишет фиксированную структуру; запись в bytes.Buffer не возвращает ошибок
func write(buf *bytes.Buffer, v interface{}) {
	_ = binary.Write(buf, binary.LittleEndian, v)
}
