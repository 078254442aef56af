package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for catalog values stored in BadgerDB. Field order is part
// of the stored format; append new fields at the end.
var (
	IDMUS          = idMUS{}
	DestinationMUS = destinationMUS{}
	PackageMUS     = packageMUS{}
	FingerprintMUS = fingerprintMUS{}

	vectorMUS = ord.NewSliceSer[float32](raw.Float32)
	priceMUS  = ord.NewPtrSer[float64](raw.Float64)
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) (size int) {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

type destinationMUS struct{}

func (destinationMUS) Marshal(d Destination, bs []byte) (n int) {
	n = IDMUS.Marshal(d.Id, bs)
	n += ord.String.Marshal(d.Name, bs[n:])
	n += ord.String.Marshal(d.Country, bs[n:])
	n += ord.String.Marshal(d.Climate, bs[n:])
	n += ord.String.Marshal(d.Activities, bs[n:])
	n += ord.String.Marshal(d.Description, bs[n:])
	return n
}

func (destinationMUS) Unmarshal(bs []byte) (d Destination, n int, err error) {
	var n1 int
	d.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	d.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.Country, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.Climate, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.Activities, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (destinationMUS) Size(d Destination) (size int) {
	size = IDMUS.Size(d.Id)
	size += ord.String.Size(d.Name)
	size += ord.String.Size(d.Country)
	size += ord.String.Size(d.Climate)
	size += ord.String.Size(d.Activities)
	size += ord.String.Size(d.Description)
	return size
}

func (destinationMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	for i := 0; i < 5; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

type packageMUS struct{}

func (packageMUS) Marshal(p Package, bs []byte) (n int) {
	n = IDMUS.Marshal(p.Id, bs)
	n += IDMUS.Marshal(p.DestinationId, bs[n:])
	n += ord.String.Marshal(p.Name, bs[n:])
	n += ord.String.Marshal(p.Budget, bs[n:])
	n += varint.Int.Marshal(p.Nights, bs[n:])
	n += priceMUS.Marshal(p.Price, bs[n:])
	n += ord.String.Marshal(p.Activities, bs[n:])
	n += ord.String.Marshal(p.Highlights, bs[n:])
	n += vectorMUS.Marshal(p.Vector, bs[n:])
	return n
}

func (packageMUS) Unmarshal(bs []byte) (p Package, n int, err error) {
	var n1 int
	p.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	p.DestinationId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Budget, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Nights, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Price, n1, err = priceMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Activities, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Highlights, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (packageMUS) Size(p Package) (size int) {
	size = IDMUS.Size(p.Id)
	size += IDMUS.Size(p.DestinationId)
	size += ord.String.Size(p.Name)
	size += ord.String.Size(p.Budget)
	size += varint.Int.Size(p.Nights)
	size += priceMUS.Size(p.Price)
	size += ord.String.Size(p.Activities)
	size += ord.String.Size(p.Highlights)
	size += vectorMUS.Size(p.Vector)
	return size
}

func (packageMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = PackageMUS.Unmarshal(bs)
	return
}

type fingerprintMUS struct{}

func (fingerprintMUS) Marshal(f Fingerprint, bs []byte) (n int) {
	n = ord.String.Marshal(f.Collection, bs)
	n += IDMUS.Marshal(f.Sum, bs[n:])
	n += varint.Int.Marshal(f.Records, bs[n:])
	n += varint.Int64.Marshal(f.ImportedAt.UnixMicro(), bs[n:])
	return n
}

func (fingerprintMUS) Unmarshal(bs []byte) (f Fingerprint, n int, err error) {
	var (
		n1    int
		micro int64
	)
	f.Collection, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	f.Sum, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	f.Records, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	micro, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	f.ImportedAt = time.UnixMicro(micro).UTC()
	return
}

func (fingerprintMUS) Size(f Fingerprint) (size int) {
	size = ord.String.Size(f.Collection)
	size += IDMUS.Size(f.Sum)
	size += varint.Int.Size(f.Records)
	size += varint.Int64.Size(f.ImportedAt.UnixMicro())
	return size
}

func (fingerprintMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = FingerprintMUS.Unmarshal(bs)
	return
}
