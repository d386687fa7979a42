package serhex

// SerializeOpt encodes an optional value: a present value goes through the
// wrapped codec and the sink's string channel, an absent one emits the
// sink's null marker.
func SerializeOpt[T any](c Codec[T], v *T, sink Sink) error {
	if v == nil {
		return sink.WriteNull()
	}
	return Serialize(c, *v, sink)
}

// DeserializeOpt decodes an optional value. Null and unit deliveries yield
// nil, a some-wrapped delivery recurses into its payload, and string or
// bytes deliveries decode through the wrapped codec, propagating that
// codec's error on failure.
func DeserializeOpt[T any](c Codec[T], tok Token) (*T, error) {
	switch tok.Kind {
	case TokenNull, TokenUnit:
		return nil, nil
	case TokenSome:
		return DeserializeOpt(c, *tok.Elem)
	}
	v, err := Deserialize(c, tok)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
