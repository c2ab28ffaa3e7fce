package ptcodec

var FrameLength = frameLength
