package components

// OffsetComponent 绘制时的平移量(纯数据)
// 游标实体通过它实现每帧的水平重定位，线段端点本身保持不变
type OffsetComponent struct {
	X, Y float64
}
