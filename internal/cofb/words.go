package cofb

// wordsFromBytes big-endian-packs up to 16 bytes of src into four 32-bit
// words, zero-padding any bytes beyond len(src).
func wordsFromBytes(src []byte) [4]uint32 {
	var buf [blockSize]byte
	copy(buf[:], src)

	var w [4]uint32
	for i := 0; i < 4; i++ {
		w[i] = uint32(buf[i*4])<<24 | uint32(buf[i*4+1])<<16 |
			uint32(buf[i*4+2])<<8 | uint32(buf[i*4+3])
	}
	return w
}

// bytesFromWords big-endian-unpacks w into a 16-byte array.
func bytesFromWords(w [4]uint32) [blockSize]byte {
	var buf [blockSize]byte
	for i := 0; i < 4; i++ {
		buf[i*4] = byte(w[i] >> 24)
		buf[i*4+1] = byte(w[i] >> 16)
		buf[i*4+2] = byte(w[i] >> 8)
		buf[i*4+3] = byte(w[i])
	}
	return buf
}

// padBlock copies the trailing data bytes after a whole number of full
// blocks have been consumed into a zero-padded 16-byte buffer, appending the
// 0x80 marker byte used by GIFT-COFB's padding rule when the data doesn't
// fill the block exactly.
func padBlock(data []byte, consumed int) [blockSize]byte {
	var buf [blockSize]byte
	remaining := len(data) - consumed
	copy(buf[:remaining], data[consumed:])
	if remaining < blockSize {
		buf[remaining] = 0x80
	}
	return buf
}
