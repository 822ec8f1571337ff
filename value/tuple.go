package value

// Tuples encode as arrays, element i from field Vi. Decoding drops extra
// elements, releasing them when the array is owned.

type Tuple2[A, B any] struct {
	V0 A
	V1 B
}

type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

type Tuple4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

type Tuple5[A, B, C, D, E any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
}

func (t Tuple2[A, B]) EncodeValue() (Value, error) {
	return encodeAll(t.V0, t.V1)
}

func (t *Tuple2[A, B]) DecodeValue(v Value) error {
	es, err := elems(v, 2)
	if err != nil {
		return err
	}
	if t.V0, err = As[A](es[0]); err != nil {
		return err
	}
	t.V1, err = As[B](es[1])
	return err
}

func (t Tuple3[A, B, C]) EncodeValue() (Value, error) {
	return encodeAll(t.V0, t.V1, t.V2)
}

func (t *Tuple3[A, B, C]) DecodeValue(v Value) error {
	es, err := elems(v, 3)
	if err != nil {
		return err
	}
	if t.V0, err = As[A](es[0]); err != nil {
		return err
	}
	if t.V1, err = As[B](es[1]); err != nil {
		return err
	}
	t.V2, err = As[C](es[2])
	return err
}

func (t Tuple4[A, B, C, D]) EncodeValue() (Value, error) {
	return encodeAll(t.V0, t.V1, t.V2, t.V3)
}

func (t *Tuple4[A, B, C, D]) DecodeValue(v Value) error {
	es, err := elems(v, 4)
	if err != nil {
		return err
	}
	if t.V0, err = As[A](es[0]); err != nil {
		return err
	}
	if t.V1, err = As[B](es[1]); err != nil {
		return err
	}
	if t.V2, err = As[C](es[2]); err != nil {
		return err
	}
	t.V3, err = As[D](es[3])
	return err
}

func (t Tuple5[A, B, C, D, E]) EncodeValue() (Value, error) {
	return encodeAll(t.V0, t.V1, t.V2, t.V3, t.V4)
}

func (t *Tuple5[A, B, C, D, E]) DecodeValue(v Value) error {
	es, err := elems(v, 5)
	if err != nil {
		return err
	}
	if t.V0, err = As[A](es[0]); err != nil {
		return err
	}
	if t.V1, err = As[B](es[1]); err != nil {
		return err
	}
	if t.V2, err = As[C](es[2]); err != nil {
		return err
	}
	if t.V3, err = As[D](es[3]); err != nil {
		return err
	}
	t.V4, err = As[E](es[4])
	return err
}
