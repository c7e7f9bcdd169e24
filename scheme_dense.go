package mirror

// Dense468 is the 468-point face mesh scheme (MediaPipe Face Mesh index
// layout). Providers usually report it in normalized coordinates.
var Dense468 = newScheme("dense468", 468, 0.2, map[Feature][]int{
	FeatureFaceOval: {
		10, 338, 297, 332, 284, 251, 389, 356, 454, 323, 361, 288,
		397, 365, 379, 378, 400, 377, 152, 148, 176, 149, 150, 136,
		172, 58, 132, 93, 234, 127, 162, 21, 54, 103, 67, 109,
	},
	// Upper outer lip corner to corner, then the lower outer lip back.
	FeatureLipsOuter: {
		61, 185, 40, 39, 37, 0, 267, 269, 270, 409, 291,
		375, 321, 405, 314, 17, 84, 181, 91, 146,
	},
	FeatureLipsInner: {
		78, 191, 80, 81, 82, 13, 312, 311, 310, 415, 308,
		324, 318, 402, 317, 14, 87, 178, 88, 95,
	},
	FeatureLowerLipCenter: {14, 17},

	FeatureRightEye: {33, 7, 163, 144, 145, 153, 154, 155, 133, 173, 157, 158, 159, 160, 161, 246},
	FeatureLeftEye:  {362, 382, 381, 380, 374, 373, 390, 249, 263, 466, 388, 387, 386, 385, 384, 398},

	FeatureRightUpperLid: {133, 173, 157, 158, 159, 160, 161, 246, 33},
	FeatureLeftUpperLid:  {362, 398, 384, 385, 386, 387, 388, 466, 263},

	FeatureRightBrow: {46, 53, 52, 65, 55},
	FeatureLeftBrow:  {276, 283, 282, 295, 285},

	FeatureRightBrowTail:  {46},
	FeatureLeftBrowTail:   {276},
	FeatureRightEyeOuter:  {33},
	FeatureLeftEyeOuter:   {263},
	FeatureRightLidReturn: {161},
	FeatureLeftLidReturn:  {388},

	FeatureRightCheek:     {36, 205, 206, 207, 187},
	FeatureLeftCheek:      {266, 425, 426, 427, 411},
	FeatureRightCheekbone: {116},
	FeatureLeftCheekbone:  {345},

	FeatureNoseBridge:    {6, 197, 195, 5, 4},
	FeatureCupidsBow:     {0},
	FeatureRightBrowBone: {107},
	FeatureLeftBrowBone:  {336},

	FeatureFaceWidth:   {234, 454},
	FeatureCheekSample: {123, 187, 207, 205},
})
