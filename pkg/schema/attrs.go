package schema

// Attr is an attribute record: the decoded configuration of one operator.
// Each record reports the operator kind it belongs to, which is how
// NewPrimitive checks that a node's tag and payload agree.
//
// Fields carry an `attr` tag naming the attribute in exported formats.
type Attr interface {
	PrimitiveType() PrimitiveType
}

type Conv2D struct {
	KernelH    int64          `attr:"kernel_h"`
	KernelW    int64          `attr:"kernel_w"`
	StrideH    int64          `attr:"stride_h"`
	StrideW    int64          `attr:"stride_w"`
	DilationH  int64          `attr:"dilation_h"`
	DilationW  int64          `attr:"dilation_w"`
	PadMode    PadMode        `attr:"pad_mode"`
	InChannel  int64          `attr:"in_channel"`
	OutChannel int64          `attr:"out_channel"`
	Group      int64          `attr:"group"`
	HasBias    bool           `attr:"has_bias"`
	Activation ActivationType `attr:"activation"`
}

func (*Conv2D) PrimitiveType() PrimitiveType { return PrimitiveConv2D }

type DepthwiseConv2D struct {
	KernelH           int64          `attr:"kernel_h"`
	KernelW           int64          `attr:"kernel_w"`
	StrideH           int64          `attr:"stride_h"`
	StrideW           int64          `attr:"stride_w"`
	DilationH         int64          `attr:"dilation_h"`
	DilationW         int64          `attr:"dilation_w"`
	PadMode           PadMode        `attr:"pad_mode"`
	InChannel         int64          `attr:"in_channel"`
	ChannelMultiplier int64          `attr:"channel_multiplier"`
	HasBias           bool           `attr:"has_bias"`
	Activation        ActivationType `attr:"activation"`
}

func (*DepthwiseConv2D) PrimitiveType() PrimitiveType { return PrimitiveDepthwiseConv2D }

type TransposeConv2D struct {
	KernelH    int64   `attr:"kernel_h"`
	KernelW    int64   `attr:"kernel_w"`
	StrideH    int64   `attr:"stride_h"`
	StrideW    int64   `attr:"stride_w"`
	PadMode    PadMode `attr:"pad_mode"`
	InChannel  int64   `attr:"in_channel"`
	OutChannel int64   `attr:"out_channel"`
	HasBias    bool    `attr:"has_bias"`
	// OutputShape is the constant output_shape input, when there is one.
	OutputShape []int64 `attr:"output_shape"`
}

func (*TransposeConv2D) PrimitiveType() PrimitiveType { return PrimitiveTransposeConv2D }

type FullyConnected struct {
	Activation  ActivationType `attr:"activation"`
	KeepNumDims bool           `attr:"keep_num_dims"`
	HasBias     bool           `attr:"has_bias"`
}

func (*FullyConnected) PrimitiveType() PrimitiveType { return PrimitiveFullyConnected }

type Pooling struct {
	Mode       PoolMode       `attr:"mode"`
	PadMode    PadMode        `attr:"pad_mode"`
	StrideH    int64          `attr:"stride_h"`
	StrideW    int64          `attr:"stride_w"`
	WindowH    int64          `attr:"window_h"`
	WindowW    int64          `attr:"window_w"`
	Activation ActivationType `attr:"activation"`
}

func (*Pooling) PrimitiveType() PrimitiveType { return PrimitivePooling }

type Activation struct {
	Type  ActivationType `attr:"type"`
	Alpha float32        `attr:"alpha"`
}

func (*Activation) PrimitiveType() PrimitiveType { return PrimitiveActivation }

type PReLU struct {
	ChannelShared bool      `attr:"channel_shared"`
	Slope         []float32 `attr:"slope"`
}

func (*PReLU) PrimitiveType() PrimitiveType { return PrimitivePReLU }

type Add struct {
	Activation ActivationType `attr:"activation"`
}

func (*Add) PrimitiveType() PrimitiveType { return PrimitiveAdd }

type Sub struct {
	Activation ActivationType `attr:"activation"`
}

func (*Sub) PrimitiveType() PrimitiveType { return PrimitiveSub }

type Mul struct {
	Activation ActivationType `attr:"activation"`
}

func (*Mul) PrimitiveType() PrimitiveType { return PrimitiveMul }

type Div struct {
	Activation ActivationType `attr:"activation"`
}

func (*Div) PrimitiveType() PrimitiveType { return PrimitiveDiv }

type Softmax struct {
	Axis int64   `attr:"axis"`
	Beta float32 `attr:"beta"`
}

func (*Softmax) PrimitiveType() PrimitiveType { return PrimitiveSoftmax }

type LogSoftmax struct {
	Axis int64 `attr:"axis"`
}

func (*LogSoftmax) PrimitiveType() PrimitiveType { return PrimitiveLogSoftmax }

type Concat struct {
	Axis       int64          `attr:"axis"`
	Activation ActivationType `attr:"activation"`
}

func (*Concat) PrimitiveType() PrimitiveType { return PrimitiveConcat }

// Reshape carries the target shape when it is known at conversion time.
// An empty shape means the shape arrives as a runtime input.
type Reshape struct {
	Shape []int64 `attr:"shape"`
}

func (*Reshape) PrimitiveType() PrimitiveType { return PrimitiveReshape }

type Transpose struct {
	Perm []int64 `attr:"perm"`
}

func (*Transpose) PrimitiveType() PrimitiveType { return PrimitiveTranspose }

type Squeeze struct {
	Axes []int64 `attr:"axes"`
}

func (*Squeeze) PrimitiveType() PrimitiveType { return PrimitiveSqueeze }

type ExpandDims struct {
	Axis []int64 `attr:"axis"`
}

func (*ExpandDims) PrimitiveType() PrimitiveType { return PrimitiveExpandDims }

type StridedSlice struct {
	BeginMask      int64   `attr:"begin_mask"`
	EndMask        int64   `attr:"end_mask"`
	EllipsisMask   int64   `attr:"ellipsis_mask"`
	NewAxisMask    int64   `attr:"new_axis_mask"`
	ShrinkAxisMask int64   `attr:"shrink_axis_mask"`
	Begin          []int64 `attr:"begin"`
	End            []int64 `attr:"end"`
	Strides        []int64 `attr:"strides"`
}

func (*StridedSlice) PrimitiveType() PrimitiveType { return PrimitiveStridedSlice }

type Slice struct {
	Begin []int64 `attr:"begin"`
	Size  []int64 `attr:"size"`
}

func (*Slice) PrimitiveType() PrimitiveType { return PrimitiveSlice }

type Gather struct {
	Axis      int64 `attr:"axis"`
	BatchDims int64 `attr:"batch_dims"`
}

func (*Gather) PrimitiveType() PrimitiveType { return PrimitiveGather }

type GatherNd struct{}

func (*GatherNd) PrimitiveType() PrimitiveType { return PrimitiveGatherNd }

type Stack struct {
	Axis int64 `attr:"axis"`
	N    int64 `attr:"n"`
}

func (*Stack) PrimitiveType() PrimitiveType { return PrimitiveStack }

type Unstack struct {
	Axis int64 `attr:"axis"`
	Num  int64 `attr:"num"`
}

func (*Unstack) PrimitiveType() PrimitiveType { return PrimitiveUnstack }

type Split struct {
	Axis       int64   `attr:"axis"`
	NumSplits  int64   `attr:"num_splits"`
	SizeSplits []int64 `attr:"size_splits"`
}

func (*Split) PrimitiveType() PrimitiveType { return PrimitiveSplit }

type Tile struct {
	Multiples []int64 `attr:"multiples"`
}

func (*Tile) PrimitiveType() PrimitiveType { return PrimitiveTile }

type DepthToSpace struct {
	BlockSize int64 `attr:"block_size"`
}

func (*DepthToSpace) PrimitiveType() PrimitiveType { return PrimitiveDepthToSpace }

type SpaceToDepth struct {
	BlockSize int64 `attr:"block_size"`
}

func (*SpaceToDepth) PrimitiveType() PrimitiveType { return PrimitiveSpaceToDepth }

type BatchToSpaceND struct {
	BlockShape []int64 `attr:"block_shape"`
	Crops      []int64 `attr:"crops"`
}

func (*BatchToSpaceND) PrimitiveType() PrimitiveType { return PrimitiveBatchToSpaceND }

type SpaceToBatchND struct {
	BlockShape []int64 `attr:"block_shape"`
	Paddings   []int64 `attr:"paddings"`
}

func (*SpaceToBatchND) PrimitiveType() PrimitiveType { return PrimitiveSpaceToBatchND }

type Shape struct {
	OutType DataType `attr:"out_type"`
}

func (*Shape) PrimitiveType() PrimitiveType { return PrimitiveShape }

type Rank struct{}

func (*Rank) PrimitiveType() PrimitiveType { return PrimitiveRank }

type Fill struct{}

func (*Fill) PrimitiveType() PrimitiveType { return PrimitiveFill }

type ZerosLike struct{}

func (*ZerosLike) PrimitiveType() PrimitiveType { return PrimitiveZerosLike }

type Range struct{}

func (*Range) PrimitiveType() PrimitiveType { return PrimitiveRange }

type ReverseV2 struct {
	Axes []int64 `attr:"axes"`
}

func (*ReverseV2) PrimitiveType() PrimitiveType { return PrimitiveReverseV2 }

type OneHot struct {
	Axis int64 `attr:"axis"`
}

func (*OneHot) PrimitiveType() PrimitiveType { return PrimitiveOneHot }

// Pad holds paddings flattened as [before0, after0, before1, after1, ...].
type Pad struct {
	Mode     PaddingMode `attr:"mode"`
	Paddings []int64     `attr:"paddings"`
}

func (*Pad) PrimitiveType() PrimitiveType { return PrimitivePad }

type Reduce struct {
	Mode     ReduceMode `attr:"mode"`
	KeepDims bool       `attr:"keep_dims"`
	Axes     []int64    `attr:"axes"`
}

func (*Reduce) PrimitiveType() PrimitiveType { return PrimitiveReduce }

type Resize struct {
	Method           ResizeMethod `attr:"method"`
	AlignCorners     bool         `attr:"align_corners"`
	HalfPixelCenters bool         `attr:"half_pixel_centers"`
	NewHeight        int64        `attr:"new_height"`
	NewWidth         int64        `attr:"new_width"`
}

func (*Resize) PrimitiveType() PrimitiveType { return PrimitiveResize }

type ArgMax struct {
	Axis    int64    `attr:"axis"`
	OutType DataType `attr:"out_type"`
}

func (*ArgMax) PrimitiveType() PrimitiveType { return PrimitiveArgMax }

type ArgMin struct {
	Axis    int64    `attr:"axis"`
	OutType DataType `attr:"out_type"`
}

func (*ArgMin) PrimitiveType() PrimitiveType { return PrimitiveArgMin }

type TopK struct {
	K int64 `attr:"k"`
}

func (*TopK) PrimitiveType() PrimitiveType { return PrimitiveTopK }

type Where struct{}

func (*Where) PrimitiveType() PrimitiveType { return PrimitiveWhere }

type Select struct{}

func (*Select) PrimitiveType() PrimitiveType { return PrimitiveSelect }

// SparseToDense has no attributes; indices, output shape, values and the
// default value are all runtime inputs.
type SparseToDense struct{}

func (*SparseToDense) PrimitiveType() PrimitiveType { return PrimitiveSparseToDense }

type Cast struct {
	SrcT DataType `attr:"src_t"`
	DstT DataType `attr:"dst_t"`
}

func (*Cast) PrimitiveType() PrimitiveType { return PrimitiveCast }

type QuantDTypeCast struct {
	SrcT DataType `attr:"src_t"`
	DstT DataType `attr:"dst_t"`
}

func (*QuantDTypeCast) PrimitiveType() PrimitiveType { return PrimitiveQuantDTypeCast }

type L2Norm struct {
	Activation ActivationType `attr:"activation"`
}

func (*L2Norm) PrimitiveType() PrimitiveType { return PrimitiveL2Norm }

type LocalResponseNormalization struct {
	DepthRadius int64   `attr:"depth_radius"`
	Bias        float32 `attr:"bias"`
	Alpha       float32 `attr:"alpha"`
	Beta        float32 `attr:"beta"`
}

func (*LocalResponseNormalization) PrimitiveType() PrimitiveType {
	return PrimitiveLocalResponseNormalization
}

// Element-wise, comparison and logical operators carry no attributes.

type Abs struct{}

func (*Abs) PrimitiveType() PrimitiveType { return PrimitiveAbs }

type Exp struct{}

func (*Exp) PrimitiveType() PrimitiveType { return PrimitiveExp }

type Log struct{}

func (*Log) PrimitiveType() PrimitiveType { return PrimitiveLog }

type Sqrt struct{}

func (*Sqrt) PrimitiveType() PrimitiveType { return PrimitiveSqrt }

type Rsqrt struct{}

func (*Rsqrt) PrimitiveType() PrimitiveType { return PrimitiveRsqrt }

type Sin struct{}

func (*Sin) PrimitiveType() PrimitiveType { return PrimitiveSin }

type Cos struct{}

func (*Cos) PrimitiveType() PrimitiveType { return PrimitiveCos }

type Neg struct{}

func (*Neg) PrimitiveType() PrimitiveType { return PrimitiveNeg }

type Floor struct{}

func (*Floor) PrimitiveType() PrimitiveType { return PrimitiveFloor }

type Ceil struct{}

func (*Ceil) PrimitiveType() PrimitiveType { return PrimitiveCeil }

type Round struct{}

func (*Round) PrimitiveType() PrimitiveType { return PrimitiveRound }

type Square struct{}

func (*Square) PrimitiveType() PrimitiveType { return PrimitiveSquare }

type Pow struct{}

func (*Pow) PrimitiveType() PrimitiveType { return PrimitivePow }

type Maximum struct{}

func (*Maximum) PrimitiveType() PrimitiveType { return PrimitiveMaximum }

type Minimum struct{}

func (*Minimum) PrimitiveType() PrimitiveType { return PrimitiveMinimum }

type SquaredDifference struct{}

func (*SquaredDifference) PrimitiveType() PrimitiveType { return PrimitiveSquaredDifference }

type FloorDiv struct{}

func (*FloorDiv) PrimitiveType() PrimitiveType { return PrimitiveFloorDiv }

type FloorMod struct{}

func (*FloorMod) PrimitiveType() PrimitiveType { return PrimitiveFloorMod }

type AddN struct{}

func (*AddN) PrimitiveType() PrimitiveType { return PrimitiveAddN }

type Equal struct{}

func (*Equal) PrimitiveType() PrimitiveType { return PrimitiveEqual }

type NotEqual struct{}

func (*NotEqual) PrimitiveType() PrimitiveType { return PrimitiveNotEqual }

type Less struct{}

func (*Less) PrimitiveType() PrimitiveType { return PrimitiveLess }

type LessEqual struct{}

func (*LessEqual) PrimitiveType() PrimitiveType { return PrimitiveLessEqual }

type Greater struct{}

func (*Greater) PrimitiveType() PrimitiveType { return PrimitiveGreater }

type GreaterEqual struct{}

func (*GreaterEqual) PrimitiveType() PrimitiveType { return PrimitiveGreaterEqual }

type LogicalAnd struct{}

func (*LogicalAnd) PrimitiveType() PrimitiveType { return PrimitiveLogicalAnd }

type LogicalOr struct{}

func (*LogicalOr) PrimitiveType() PrimitiveType { return PrimitiveLogicalOr }

type LogicalNot struct{}

func (*LogicalNot) PrimitiveType() PrimitiveType { return PrimitiveLogicalNot }
